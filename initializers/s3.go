package initializers

import (
	"context"

	"survey-tools-backend/config"
	filestorage "survey-tools-backend/lib/file-storage"
	s3client "survey-tools-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, архивирование отчетов отключено")
		filestorage.NewInstance(nil)
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewInstance(nil)
		return
	}

	s3client.Client = minioClient
	err = s3client.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета отчетов")
	}
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
