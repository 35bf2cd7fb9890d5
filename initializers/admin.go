package initializers

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"leave-tracking-backend/config"
	usershandler "leave-tracking-backend/lib/users"
	"leave-tracking-backend/models"
	adminapimodels "leave-tracking-backend/models/api/admin"
)

// InitDefaultAdmin - создание первичной учетной записи администратора из конфигурации,
// без пароля в конфигурации шаг пропускается
func InitDefaultAdmin() {
	if config.Conf.Admin.Password == "" {
		log.Info("Пароль администратора не задан, первичная учетная запись не создается")
		return
	}
	data := adminapimodels.CreateAdminUser{
		UserName: config.Conf.Admin.UserName,
		Email:    config.Conf.Admin.Email,
		Password: config.Conf.Admin.Password,
	}
	id, err := usershandler.Instance.CreateAdmin(data)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			log.Info("Учетная запись администратора уже существует")
			return
		}
		log.WithError(err).Error("Ошибка создания первичной учетной записи администратора")
		return
	}
	log.WithField("user_id", id).Info("Создана первичная учетная запись администратора")
}
