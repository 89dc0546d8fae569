package db

import (
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.Form{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Form")
	}
	if err := DB.AutoMigrate(&dbmodels.AnswerRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AnswerRecord")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
