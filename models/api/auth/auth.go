package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
	"leave-tracking-backend/models"
)

type SignupRequest struct {
	UserName        string `json:"user_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	PhoneNumber     string `json:"phone_number"`
	Department      string `json:"department"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

func (r SignupRequest) Validate() error {
	if r.UserName == "" {
		return errors.Wrap(models.ErrValidation, "не указан логин")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.Wrap(models.ErrValidation, "не указан пароль")
	}
	if r.Password != r.PasswordConfirm {
		return errors.Wrap(models.ErrValidation, "пароли не совпадают")
	}
	return nil
}

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.UserName == "" {
		return errors.Wrap(models.ErrValidation, "не указан логин")
	}
	if r.Password == "" {
		return errors.Wrap(models.ErrValidation, "не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"access_token"`
}

type PasswordRecovery struct {
	Email string `json:"email"` // емайл для отправки письма с инструкцией по сбросу пароля
}

func (r PasswordRecovery) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "почта имеет неправильный формат")
	}
	return nil
}

type PasswordResetRequest struct {
	ResetCode       string `json:"reset_code"`
	NewPassword     string `json:"new_password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r PasswordResetRequest) Validate() error {
	if r.ResetCode == "" {
		return errors.Wrap(models.ErrValidation, "получен некорректный код для сброса")
	}
	if r.NewPassword == "" {
		return errors.Wrap(models.ErrValidation, "не указан новый пароль")
	}
	if r.NewPassword != r.PasswordConfirm {
		return errors.Wrap(models.ErrValidation, "пароли не совпадают")
	}
	return nil
}
