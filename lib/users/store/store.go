package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"leave-tracking-backend/models"
	adminapimodels "leave-tracking-backend/models/api/admin"
	dbmodels "leave-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AppUser) (id string, err error)
	Update(userID string, updMap map[string]interface{}) error
	GetByID(userID string) (rec *dbmodels.AppUser, err error)
	FindByUserName(userName string) (rec *dbmodels.AppUser, err error)
	FindByEmail(email string) (rec *dbmodels.AppUser, err error)
	GetByResetCode(code string) (rec *dbmodels.AppUser, err error)
	ExistByUserName(userName string) (bool, error)
	ExistByEmail(email string) (bool, error)
	List(filter adminapimodels.UserFilter) (userList []dbmodels.AppUser, err error)
	ListCount(filter adminapimodels.UserFilter) (int64, error)
	CountByRole(role models.UserRole) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AppUser) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.AppUser{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.AppUser, err error) {
	err = i.db.Model(dbmodels.AppUser{}).
		Where("id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByUserName(userName string) (rec *dbmodels.AppUser, err error) {
	err = i.db.Model(dbmodels.AppUser{}).
		Where("user_name = ?", userName).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.AppUser, err error) {
	err = i.db.Model(dbmodels.AppUser{}).
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByResetCode(code string) (rec *dbmodels.AppUser, err error) {
	err = i.db.Model(dbmodels.AppUser{}).
		Where("reset_code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByUserName(userName string) (bool, error) {
	err := i.db.
		Where("user_name = ?", userName).
		First(&dbmodels.AppUser{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", email).
		First(&dbmodels.AppUser{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) List(filter adminapimodels.UserFilter) (userList []dbmodels.AppUser, err error) {
	tx := i.listQuery(filter)
	i.setPage(tx, filter)
	err = tx.
		Order("created_at desc").
		Find(&userList).
		Error
	if err != nil {
		return nil, err
	}
	return userList, nil
}

func (i impl) ListCount(filter adminapimodels.UserFilter) (int64, error) {
	var count int64
	err := i.listQuery(filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := i.db.Model(dbmodels.AppUser{}).
		Where("role = ?", role).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) listQuery(filter adminapimodels.UserFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.AppUser{}).
		Where("role = ?", models.EmployeeRole)
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(user_name) like ? OR LOWER(email) like ? OR LOWER(first_name || ' ' || last_name) like ?",
			pattern, pattern, pattern)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, filter adminapimodels.UserFilter) {
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
