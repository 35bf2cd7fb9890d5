package profileapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
	"leave-tracking-backend/models"
)

type ProfileData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
}

func (r ProfileData) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "почта имеет неправильный формат")
	}
	return nil
}

type ProfileView struct {
	ProfileData
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	RoleName string `json:"role_name"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r PasswordChange) Validate() error {
	if r.CurrentPassword == "" {
		return errors.Wrap(models.ErrValidation, "не указан текущий пароль")
	}
	if r.NewPassword == "" {
		return errors.Wrap(models.ErrValidation, "не указан новый пароль")
	}
	return nil
}
