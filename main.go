package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vinay-goud/KLIP/config"
	"github.com/vinay-goud/KLIP/dao"
	"github.com/vinay-goud/KLIP/middleware/jwt"
	"github.com/vinay-goud/KLIP/middleware/storage"
	"github.com/vinay-goud/KLIP/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}

	if err := logger.Init(cfg.Server.Debug); err != nil {
		log.Fatalln("failed to init logger:", err)
	}
	defer logger.Sync()

	if err := dao.Connect(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		log.Fatalln(err)
	}

	jwt.Init(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)

	if err := storage.Init(cfg.AWS.Region, cfg.AWS.S3Bucket); err != nil {
		log.Fatalln(err)
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	eng := gin.Default()
	setRoutes(eng)
	if err := eng.Run(cfg.Server.Addr); err != nil {
		log.Fatalln(err)
	}
}
