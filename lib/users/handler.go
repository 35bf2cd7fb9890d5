package usershandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tracking-backend/db"
	leavestore "leave-tracking-backend/lib/leave/store"
	usersstore "leave-tracking-backend/lib/users/store"
	authutils "leave-tracking-backend/lib/utils/auth-utils"
	"leave-tracking-backend/models"
	adminapimodels "leave-tracking-backend/models/api/admin"
	profileapimodels "leave-tracking-backend/models/api/profile"
	dbmodels "leave-tracking-backend/models/db"
)

type Provider interface {
	GetProfile(userID string) (profile profileapimodels.ProfileView, err error)
	UpdateProfile(userID string, data profileapimodels.ProfileData) error
	ChangePassword(userID string, data profileapimodels.PasswordChange) error
	CreateAdmin(data adminapimodels.CreateAdminUser) (id string, err error)
	GetByID(userID string) (user adminapimodels.UserView, err error)
	List(filter adminapimodels.UserFilter) (list []adminapimodels.UserStatView, rowCount int64, err error)
	Dashboard() (view adminapimodels.DashboardView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore:  usersstore.NewInstance(db.DB),
		leaveStore: leavestore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore  usersstore.Provider
	leaveStore leavestore.Provider
}

func (i impl) GetProfile(userID string) (profile profileapimodels.ProfileView, err error) {
	rec, err := i.getRec(userID)
	if err != nil {
		return profileapimodels.ProfileView{}, err
	}
	return rec.ToProfileView(), nil
}

func (i impl) UpdateProfile(userID string, data profileapimodels.ProfileData) error {
	logger := log.WithField("user_id", userID)
	rec, err := i.getRec(userID)
	if err != nil {
		return err
	}
	if rec.Email != data.Email {
		exist, err := i.userStore.ExistByEmail(data.Email)
		if err != nil {
			return err
		}
		if exist {
			return errors.Wrap(models.ErrConflict, "пользователь с такой почтой уже существует")
		}
	}
	// роль профилем не меняется
	updMap := map[string]interface{}{
		"email":        data.Email,
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"phone_number": data.PhoneNumber,
		"department":   data.Department,
	}
	err = i.userStore.Update(userID, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("ошибка обновления профиля")
		return err
	}
	logger.Info("обновлен профиль пользователя")
	return nil
}

func (i impl) ChangePassword(userID string, data profileapimodels.PasswordChange) error {
	logger := log.WithField("user_id", userID)
	rec, err := i.getRec(userID)
	if err != nil {
		return err
	}
	if !authutils.CheckPassword(data.CurrentPassword, rec.Password) {
		return errors.Wrap(models.ErrValidation, "текущий пароль указан неверно")
	}
	hash, err := authutils.HashPassword(data.NewPassword)
	if err != nil {
		return err
	}
	err = i.userStore.Update(userID, map[string]interface{}{"password": hash})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка смены пароля")
		return err
	}
	logger.Info("пароль пользователя изменен")
	return nil
}

func (i impl) CreateAdmin(data adminapimodels.CreateAdminUser) (id string, err error) {
	exist, err := i.userStore.ExistByUserName(data.UserName)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Wrap(models.ErrConflict, "пользователь с таким логином уже существует")
	}
	exist, err = i.userStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Wrap(models.ErrConflict, "пользователь с такой почтой уже существует")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.AppUser{
		UserName:    data.UserName,
		Email:       data.Email,
		Password:    hash,
		Role:        models.AdminRole,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		Department:  data.Department,
		IsActive:    true,
	}
	id, err = i.userStore.Create(rec)
	if err != nil {
		log.
			WithField("email", data.Email).
			WithError(err).
			Error("Ошибка создания администратора")
		return "", err
	}
	log.
		WithField("user_id", id).
		WithField("email", data.Email).
		Info("Создан администратор")
	return id, nil
}

func (i impl) GetByID(userID string) (user adminapimodels.UserView, err error) {
	rec, err := i.getRec(userID)
	if err != nil {
		return adminapimodels.UserView{}, err
	}
	return adminapimodels.UserConvert(*rec), nil
}

func (i impl) List(filter adminapimodels.UserFilter) (list []adminapimodels.UserStatView, rowCount int64, err error) {
	rowCount, err = i.userStore.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.userStore.List(filter)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка получения списка пользователей")
		return nil, 0, err
	}
	userIDs := make([]string, 0, len(recList))
	for _, rec := range recList {
		userIDs = append(userIDs, rec.ID)
	}
	statList, err := i.leaveStore.StatsForUsers(userIDs)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка подсчета заявок пользователей")
		return nil, 0, err
	}
	result := make([]adminapimodels.UserStatView, 0, len(recList))
	for _, rec := range recList {
		view := adminapimodels.UserStatView{
			UserView: adminapimodels.UserConvert(rec),
		}
		for _, stat := range statList {
			if stat.UserID != rec.ID {
				continue
			}
			view.TotalRequests += stat.Count
			switch stat.Status {
			case models.LeaveStatusPending:
				view.PendingRequests = stat.Count
			case models.LeaveStatusApproved:
				view.ApprovedRequests = stat.Count
			}
		}
		result = append(result, view)
	}
	return result, rowCount, nil
}

func (i impl) Dashboard() (view adminapimodels.DashboardView, err error) {
	stats, err := i.leaveStore.CountByStatus("")
	if err != nil {
		log.
			WithError(err).
			Error("ошибка подсчета заявок по статусам")
		return adminapimodels.DashboardView{}, err
	}
	totalUsers, err := i.userStore.CountByRole(models.EmployeeRole)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка подсчета пользователей")
		return adminapimodels.DashboardView{}, err
	}
	return adminapimodels.DashboardView{
		Pending:    stats.Pending,
		Approved:   stats.Approved,
		Rejected:   stats.Rejected,
		TotalUsers: totalUsers,
	}, nil
}

func (i impl) getRec(userID string) (rec *dbmodels.AppUser, err error) {
	rec, err = i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}
