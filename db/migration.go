package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "leave-tracking-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.AppUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppUser")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LeaveRequest")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
