package authhandler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tracking-backend/config"
	"leave-tracking-backend/db"
	"leave-tracking-backend/lib/smtp"
	usersstore "leave-tracking-backend/lib/users/store"
	authutils "leave-tracking-backend/lib/utils/auth-utils"
	"leave-tracking-backend/models"
	authapimodels "leave-tracking-backend/models/api/auth"
	profileapimodels "leave-tracking-backend/models/api/profile"
	dbmodels "leave-tracking-backend/models/db"
)

const resetCodeHoursToExpire = 24

type Provider interface {
	Signup(data authapimodels.SignupRequest) (response authapimodels.JWTResponse, err error)
	Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error)
	Me(userID string) (profile profileapimodels.ProfileView, err error)
	RecoverPassword(email string) error
	ResetPassword(data authapimodels.PasswordResetRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
		emailFrom: config.Conf.Smtp.EmailSendReset,
	}
}

type impl struct {
	userStore usersstore.Provider
	emailFrom string
}

func (i impl) Signup(data authapimodels.SignupRequest) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.userStore.ExistByUserName(data.UserName)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if exist {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrConflict, "пользователь с таким логином уже существует")
	}
	exist, err = i.userStore.ExistByEmail(data.Email)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if exist {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrConflict, "пользователь с такой почтой уже существует")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	// при самостоятельной регистрации роль всегда user
	rec := dbmodels.AppUser{
		UserName:    data.UserName,
		Email:       data.Email,
		Password:    hash,
		Role:        models.EmployeeRole,
		PhoneNumber: data.PhoneNumber,
		Department:  data.Department,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		IsActive:    true,
	}
	userID, err := i.userStore.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка создания пользователя")
		return authapimodels.JWTResponse{}, err
	}
	logger.
		WithField("user_id", userID).
		Info("Зарегистрирован пользователь")
	return i.issueToken(userID, rec.GetFullName(), rec.Role)
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("user_name", data.UserName)
	user, err := i.userStore.FindByUserName(data.UserName)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по логину")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("пользователь с таким логином не найден")
		return authapimodels.JWTResponse{}, errors.New("неверный логин или пароль")
	}
	if !authutils.CheckPassword(data.Password, user.Password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("неверный логин или пароль")
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return i.issueToken(user.ID, user.GetFullName(), user.Role)
}

func (i impl) Me(userID string) (profile profileapimodels.ProfileView, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return profileapimodels.ProfileView{}, err
	}
	if user == nil {
		return profileapimodels.ProfileView{}, models.ErrNotFound
	}
	return user.ToProfileView(), nil
}

// RecoverPassword - ответ одинаков вне зависимости от того, существует ли почта,
// чтобы по нему нельзя было перебирать учетные записи
func (i impl) RecoverPassword(email string) error {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return err
	}
	if user == nil {
		logger.Info("запрошен сброс пароля для неизвестной почты")
		return nil
	}
	resetCode := uuid.NewString()
	updMap := map[string]interface{}{
		"reset_code":         resetCode,
		"reset_code_expires": time.Now().Add(time.Hour * resetCodeHoursToExpire),
	}
	err = i.userStore.Update(user.ID, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка сохранения кода сброса пароля")
		return err
	}
	message := fmt.Sprintf("Ссылка для сброса пароля: %s/reset-password?code=%s", config.Conf.Smtp.DomainForResetLink, resetCode)
	err = smtp.Instance.SendEMail(i.emailFrom, email, message, "Сброс пароля")
	if err != nil {
		return err
	}
	logger.Info("отправлена ссылка для сброса пароля")
	return nil
}

func (i impl) ResetPassword(data authapimodels.PasswordResetRequest) error {
	user, err := i.userStore.GetByResetCode(data.ResetCode)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка поиска пользователя по коду сброса")
		return err
	}
	if user == nil {
		return errors.Wrap(models.ErrValidation, "указанный код не найден")
	}
	if user.ResetCodeExpires.Before(time.Now()) {
		return errors.Wrap(models.ErrValidation, "срок указанного кода истек")
	}
	hash, err := authutils.HashPassword(data.NewPassword)
	if err != nil {
		return err
	}
	// код одноразовый, после применения затирается
	updMap := map[string]interface{}{
		"password":           hash,
		"reset_code":         "",
		"reset_code_expires": time.Time{},
	}
	err = i.userStore.Update(user.ID, updMap)
	if err != nil {
		log.
			WithField("user_id", user.ID).
			WithError(err).
			Error("ошибка сброса пароля")
		return err
	}
	log.
		WithField("user_id", user.ID).
		Info("пароль сброшен по коду")
	return nil
}

func (i impl) issueToken(userID, name string, role models.UserRole) (authapimodels.JWTResponse, error) {
	tokenString, err := authutils.GetToken(userID, name, role)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{Token: tokenString}, nil
}
