package dbmodels

import (
	"leave-tracking-backend/models"
	"time"
)

type LeaveRequest struct {
	BaseModel
	UserID       string             `gorm:"type:varchar(36);index"`
	User         *AppUser           `gorm:"foreignKey:UserID"`
	LeaveType    models.LeaveType   `gorm:"type:varchar(20)"`
	StartDate    time.Time          `gorm:"type:date"`
	EndDate      time.Time          `gorm:"type:date"`
	Reason       string
	Status       models.LeaveStatus `gorm:"type:varchar(10);index"`
	AdminComment string
}

// DaysCount - кол-во дней отпуска, обе даты включительно
func (r LeaveRequest) DaysCount() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
