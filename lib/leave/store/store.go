package leavestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"leave-tracking-backend/models"
	leaveapimodels "leave-tracking-backend/models/api/leave"
	dbmodels "leave-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(userID string, filter leaveapimodels.LeaveFilter) (list []dbmodels.LeaveRequest, err error)
	ListCount(userID string, filter leaveapimodels.LeaveFilter) (int64, error)
	CountByStatus(userID string) (stats leaveapimodels.StatusStats, err error)
	StatsForUsers(userIDs []string) (list []UserStatusCount, err error)
}

// UserStatusCount - кол-во заявок пользователя в разрезе статуса
type UserStatusCount struct {
	UserID string
	Status models.LeaveStatus
	Count  int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LeaveRequest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.LeaveRequest{}).
		Error
}

func (i impl) List(userID string, filter leaveapimodels.LeaveFilter) (list []dbmodels.LeaveRequest, err error) {
	tx, err := i.listQuery(userID, filter)
	if err != nil {
		return nil, err
	}
	i.setPage(tx, filter)
	err = tx.
		Preload("User").
		Order("leave_requests.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID string, filter leaveapimodels.LeaveFilter) (int64, error) {
	tx, err := i.listQuery(userID, filter)
	if err != nil {
		return 0, err
	}
	var count int64
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) CountByStatus(userID string) (stats leaveapimodels.StatusStats, err error) {
	rows := []struct {
		Status models.LeaveStatus
		Count  int64
	}{}
	tx := i.db.Model(dbmodels.LeaveRequest{}).
		Select("status, count(*) as count").
		Group("status")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.Find(&rows).Error
	if err != nil {
		return leaveapimodels.StatusStats{}, err
	}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.LeaveStatusPending:
			stats.Pending = row.Count
		case models.LeaveStatusApproved:
			stats.Approved = row.Count
		case models.LeaveStatusRejected:
			stats.Rejected = row.Count
		}
	}
	return stats, nil
}

func (i impl) StatsForUsers(userIDs []string) (list []UserStatusCount, err error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Select("user_id, status, count(*) as count").
		Where("user_id in ?", userIDs).
		Group("user_id, status").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) listQuery(userID string, filter leaveapimodels.LeaveFilter) (*gorm.DB, error) {
	tx := i.db.Model(dbmodels.LeaveRequest{})
	if userID != "" {
		tx = tx.Where("leave_requests.user_id = ?", userID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.
			Joins("left join app_users on app_users.id = leave_requests.user_id").
			Where("LOWER(app_users.user_name) like ? OR LOWER(app_users.email) like ? OR LOWER(leave_requests.reason) like ?",
				pattern, pattern, pattern)
	}
	if filter.LeaveType != "" {
		tx = tx.Where("leave_requests.leave_type = ?", filter.LeaveType)
	}
	if filter.Status != "" {
		tx = tx.Where("leave_requests.status = ?", filter.Status)
	}
	dateFrom, dateTo, err := filter.GetRange()
	if err != nil {
		return nil, err
	}
	// фильтр по вхождению: заявка попадает в окно целиком
	if dateFrom != nil {
		tx = tx.Where("leave_requests.start_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		tx = tx.Where("leave_requests.end_date <= ?", *dateTo)
	}
	return tx, nil
}

func (i impl) setPage(tx *gorm.DB, filter leaveapimodels.LeaveFilter) {
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
