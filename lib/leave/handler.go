package leavehandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tracking-backend/config"
	"leave-tracking-backend/db"
	leavestore "leave-tracking-backend/lib/leave/store"
	"leave-tracking-backend/models"
	leaveapimodels "leave-tracking-backend/models/api/leave"
	dbmodels "leave-tracking-backend/models/db"
)

type Provider interface {
	Create(userID string, role models.UserRole, data leaveapimodels.LeaveRequestData) (id string, err error)
	GetByID(userID string, role models.UserRole, id string) (item leaveapimodels.LeaveRequestView, err error)
	Update(userID string, role models.UserRole, id string, data leaveapimodels.LeaveRequestData) error
	Delete(userID string, role models.UserRole, id string) error
	Transition(userID string, role models.UserRole, id string, status models.LeaveStatus, data leaveapimodels.DecisionData) error
	List(userID string, role models.UserRole, filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveRequestView, rowCount int64, err error)
	Stats(userID string, role models.UserRole) (stats leaveapimodels.StatusStats, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         leavestore.NewInstance(db.DB),
		allowRedecide: *config.Conf.Leave.AllowRedecide,
	}
}

type impl struct {
	store         leavestore.Provider
	allowRedecide bool
}

func (i impl) Create(userID string, role models.UserRole, data leaveapimodels.LeaveRequestData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	if role.IsAdmin() {
		return "", errors.Wrap(models.ErrForbidden, "администратор не может подать заявку на отпуск")
	}
	startDate, endDate, err := data.GetPeriod()
	if err != nil {
		return "", err
	}
	rec := dbmodels.LeaveRequest{
		UserID:    userID,
		LeaveType: data.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    data.Reason,
		Status:    models.LeaveStatusPending,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Ошибка создания заявки на отпуск")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создана заявка на отпуск")
	return id, nil
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (item leaveapimodels.LeaveRequestView, err error) {
	rec, err := i.getRec(userID, role, id)
	if err != nil {
		return leaveapimodels.LeaveRequestView{}, err
	}
	return leaveapimodels.LeaveRequestConvert(*rec), nil
}

func (i impl) Update(userID string, role models.UserRole, id string, data leaveapimodels.LeaveRequestData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	rec, err := i.getRec(userID, role, id)
	if err != nil {
		return err
	}
	if rec.Status != models.LeaveStatusPending {
		return errors.Wrap(models.ErrForbidden, "редактировать можно только заявку на рассмотрении")
	}
	startDate, endDate, err := data.GetPeriod()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"leave_type": data.LeaveType,
		"start_date": startDate,
		"end_date":   endDate,
		"reason":     data.Reason,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("ошибка обновления заявки")
		return err
	}
	logger.Info("обновлена заявка на отпуск")
	return nil
}

func (i impl) Delete(userID string, role models.UserRole, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	rec, err := i.getRec(userID, role, id)
	if err != nil {
		return err
	}
	// админ удаляет любую заявку, владелец только нерассмотренную
	if !role.IsAdmin() && rec.Status != models.LeaveStatusPending {
		return errors.Wrap(models.ErrForbidden, "удалить можно только заявку на рассмотрении")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления заявки")
		return err
	}
	logger.Info("удалена заявка на отпуск")
	return nil
}

func (i impl) Transition(userID string, role models.UserRole, id string, status models.LeaveStatus, data leaveapimodels.DecisionData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id).
		WithField("new_status", status)
	if !role.IsAdmin() {
		return errors.Wrap(models.ErrForbidden, "рассматривать заявки может только администратор")
	}
	if !status.IsDecision() {
		return errors.Wrap(models.ErrValidation, "недопустимый статус заявки")
	}
	rec, err := i.getRec(userID, role, id)
	if err != nil {
		return err
	}
	if rec.Status != models.LeaveStatusPending && !i.allowRedecide {
		return errors.Wrap(models.ErrForbidden, "заявка уже рассмотрена")
	}
	updMap := map[string]interface{}{
		"status":        status,
		"admin_comment": data.Comment,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления статуса заявки")
		return err
	}
	logger.Info("статус заявки обновлен")
	return nil
}

func (i impl) List(userID string, role models.UserRole, filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveRequestView, rowCount int64, err error) {
	logger := log.WithField("user_id", userID)
	scopeUserID := i.scope(userID, role)
	rowCount, err = i.store.ListCount(scopeUserID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []leaveapimodels.LeaveRequestView{}, rowCount, nil
	}

	recList, err := i.store.List(scopeUserID, filter)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения списка заявок")
		return nil, 0, err
	}
	result := make([]leaveapimodels.LeaveRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, leaveapimodels.LeaveRequestConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Stats(userID string, role models.UserRole) (stats leaveapimodels.StatusStats, err error) {
	stats, err = i.store.CountByStatus(i.scope(userID, role))
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка подсчета заявок по статусам")
		return leaveapimodels.StatusStats{}, err
	}
	return stats, nil
}

// scope - не админ видит только свои заявки
func (i impl) scope(userID string, role models.UserRole) string {
	if role.IsAdmin() {
		return ""
	}
	return userID
}

func (i impl) getRec(userID string, role models.UserRole, id string) (item *dbmodels.LeaveRequest, err error) {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения заявки")
		return nil, err
	}
	// чужая заявка для не админа неотличима от несуществующей
	if rec == nil || (!role.IsAdmin() && rec.UserID != userID) {
		return nil, models.ErrNotFound
	}
	return rec, nil
}
