package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"survey-tools-backend/config"

	"github.com/minio/minio-go/v7"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Provider interface {
	IsConfigured() bool
	ArchiveReport(ctx context.Context, formLink string, data []byte) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) IsConfigured() bool {
	return i.s3client != nil
}

// ArchiveReport сохраняет выгрузку ответов в бакете отчетов
func (i impl) ArchiveReport(ctx context.Context, formLink string, data []byte) error {
	objectName := fmt.Sprintf("reports/%s/%s.xlsx", formLink, time.Now().Format("2006-01-02T15-04-05"))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: xlsxContentType})
	if err != nil {
		return err
	}
	return nil
}
