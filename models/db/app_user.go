package dbmodels

import (
	"fmt"
	"leave-tracking-backend/models"
	profileapimodels "leave-tracking-backend/models/api/profile"
	"time"
)

type AppUser struct {
	BaseModel
	UserName         string          `gorm:"type:varchar(150);uniqueIndex"`
	Email            string          `gorm:"type:varchar(255);uniqueIndex"`
	Password         string          `gorm:"type:varchar(128)"`
	Role             models.UserRole `gorm:"type:varchar(10)"`
	PhoneNumber      string          `gorm:"type:varchar(15)"`
	Department       string          `gorm:"type:varchar(100)"`
	FirstName        string          `gorm:"type:varchar(150)"`
	LastName         string          `gorm:"type:varchar(150)"`
	IsActive         bool
	ResetCode        string `gorm:"type:varchar(36);index"`
	ResetCodeExpires time.Time
	LastLogin        time.Time
}

func (r AppUser) ToProfileView() profileapimodels.ProfileView {
	return profileapimodels.ProfileView{
		ID:       r.ID,
		UserName: r.UserName,
		Role:     string(r.Role),
		RoleName: r.Role.ToHuman(),
		ProfileData: profileapimodels.ProfileData{
			Email:       r.Email,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			Department:  r.Department,
		},
	}
}

func (r AppUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
