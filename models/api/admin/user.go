package adminapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
	"leave-tracking-backend/models"
	apimodels "leave-tracking-backend/models/api"
	dbmodels "leave-tracking-backend/models/db"
)

type CreateAdminUser struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
}

func (r CreateAdminUser) Validate() error {
	if r.UserName == "" {
		return errors.Wrap(models.ErrValidation, "не указан логин")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.Wrap(models.ErrValidation, "не указан пароль")
	}
	return nil
}

type UserView struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RoleName    string `json:"role_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
}

func UserConvert(rec dbmodels.AppUser) UserView {
	return UserView{
		ID:          rec.ID,
		UserName:    rec.UserName,
		Email:       rec.Email,
		Role:        string(rec.Role),
		RoleName:    rec.Role.ToHuman(),
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		PhoneNumber: rec.PhoneNumber,
		Department:  rec.Department,
	}
}

// UserStatView - пользователь со счетчиками его заявок для списка в админке
type UserStatView struct {
	UserView
	TotalRequests    int64 `json:"total_requests"`
	PendingRequests  int64 `json:"pending_requests"`
	ApprovedRequests int64 `json:"approved_requests"`
}

type UserFilter struct {
	apimodels.Pagination
	Search string `json:"search"` // поиск по логину/почте/имени
}

func (r UserFilter) Validate() error {
	return nil
}

type DashboardView struct {
	Pending    int64 `json:"pending"`
	Approved   int64 `json:"approved"`
	Rejected   int64 `json:"rejected"`
	TotalUsers int64 `json:"total_users"`
}
