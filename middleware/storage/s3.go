package storage

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var (
	uploader *s3manager.Uploader
	bucket   string
)

func Init(awsRegion, s3Bucket string) error {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(awsRegion),
	})
	if err != nil {
		return fmt.Errorf("failed to open AWS session: %w", err)
	}
	uploader = s3manager.NewUploader(sess)
	bucket = s3Bucket
	return nil
}

// StoreVideo streams the clip to S3 under videos/<name><ext> and
// returns the public URL of the stored object.
func StoreVideo(name, origFilename string, data io.Reader) (string, error) {
	ext := filepath.Ext(origFilename)
	if ext == "" {
		ext = ".mp4"
	}
	key := fmt.Sprintf("videos/%s%s", name, ext)
	contentType := mime.TypeByExtension(ext)

	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return result.Location, nil
}
