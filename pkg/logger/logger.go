package logger

import (
	"go.uber.org/zap"
)

// L is the process-wide logger. Init replaces it at startup; the
// default no-op keeps tests quiet without any setup.
var L = zap.NewNop()

func Init(debug bool) error {
	var (
		lg  *zap.Logger
		err error
	)
	if debug {
		lg, err = zap.NewDevelopment()
	} else {
		lg, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	L = lg
	return nil
}

func Sync() {
	_ = L.Sync()
}
