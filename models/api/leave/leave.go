package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"
	"leave-tracking-backend/models"
	apimodels "leave-tracking-backend/models/api"
	dbmodels "leave-tracking-backend/models/db"
)

const dateFormat = "2006-01-02"

type LeaveRequestData struct {
	LeaveType models.LeaveType `json:"leave_type"`
	StartDate string           `json:"start_date"` // дата в формате 2006-01-02
	EndDate   string           `json:"end_date"`   // дата в формате 2006-01-02
	Reason    string           `json:"reason"`
}

func (r LeaveRequestData) Validate() error {
	if !r.LeaveType.IsValid() {
		return errors.Wrap(models.ErrValidation, "указан неизвестный тип отпуска")
	}
	if r.Reason == "" {
		return errors.Wrap(models.ErrValidation, "не указана причина")
	}
	_, _, err := r.GetPeriod()
	return err
}

// GetPeriod - разбор и проверка периода, дата начала не позже даты окончания
func (r LeaveRequestData) GetPeriod() (startDate, endDate time.Time, err error) {
	startDate, err = time.Parse(dateFormat, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "дата начала имеет неправильный формат")
	}
	endDate, err = time.Parse(dateFormat, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "дата окончания имеет неправильный формат")
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "дата окончания не может быть раньше даты начала")
	}
	return startDate, endDate, nil
}

type DecisionData struct {
	Comment string `json:"comment"` // комментарий админа, может быть пустым
}

type LeaveFilter struct {
	apimodels.Pagination
	Search    string             `json:"search"`     // поиск по логину/почте владельца и причине
	LeaveType models.LeaveType   `json:"leave_type"` // точное совпадение типа
	Status    models.LeaveStatus `json:"status"`
	DateFrom  string             `json:"date_from"` // заявка начинается не раньше даты
	DateTo    string             `json:"date_to"`   // заявка заканчивается не позже даты
}

func (r LeaveFilter) Validate() error {
	if r.LeaveType != "" && !r.LeaveType.IsValid() {
		return errors.Wrap(models.ErrValidation, "указан неизвестный тип отпуска")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "указан неизвестный статус")
	}
	_, _, err := r.GetRange()
	return err
}

// GetRange - окно дат фильтра, заявка должна попадать в окно целиком
func (r LeaveFilter) GetRange() (dateFrom, dateTo *time.Time, err error) {
	if r.DateFrom != "" {
		from, err := time.Parse(dateFormat, r.DateFrom)
		if err != nil {
			return nil, nil, errors.Wrap(models.ErrValidation, "дата начала фильтра имеет неправильный формат")
		}
		dateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(dateFormat, r.DateTo)
		if err != nil {
			return nil, nil, errors.Wrap(models.ErrValidation, "дата окончания фильтра имеет неправильный формат")
		}
		dateTo = &to
	}
	return dateFrom, dateTo, nil
}

type LeaveRequestView struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Email         string    `json:"email"`
	LeaveType     string    `json:"leave_type"`
	LeaveTypeName string    `json:"leave_type_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DaysCount     int       `json:"days_count"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	StatusName    string    `json:"status_name"`
	AdminComment  string    `json:"admin_comment,omitempty"`
	SubmittedOn   time.Time `json:"submitted_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

func LeaveRequestConvert(rec dbmodels.LeaveRequest) LeaveRequestView {
	view := LeaveRequestView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		LeaveType:     string(rec.LeaveType),
		LeaveTypeName: rec.LeaveType.ToHuman(),
		StartDate:     rec.StartDate.Format(dateFormat),
		EndDate:       rec.EndDate.Format(dateFormat),
		DaysCount:     rec.DaysCount(),
		Reason:        rec.Reason,
		Status:        string(rec.Status),
		StatusName:    rec.Status.ToHuman(),
		AdminComment:  rec.AdminComment,
		SubmittedOn:   rec.CreatedAt,
		UpdatedOn:     rec.UpdatedAt,
	}
	if rec.User != nil {
		view.UserName = rec.User.UserName
		view.Email = rec.User.Email
	}
	return view
}

type StatusStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
