package leaveapimodels

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"leave-tracking-backend/models"
	dbmodels "leave-tracking-backend/models/db"
)

func TestLeaveRequestData(t *testing.T) {
	validData := LeaveRequestData{
		LeaveType: models.LeaveTypeSick,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "болезнь",
	}

	t.Run(`корректная заявка`, func(t *testing.T) {
		require.Nil(t, validData.Validate())
	})

	t.Run(`неизвестный тип отпуска`, func(t *testing.T) {
		data := validData
		data.LeaveType = "holiday"
		require.True(t, errors.Is(data.Validate(), models.ErrValidation))
	})

	t.Run(`пустая причина`, func(t *testing.T) {
		data := validData
		data.Reason = ""
		require.True(t, errors.Is(data.Validate(), models.ErrValidation))
	})

	t.Run(`неправильный формат даты`, func(t *testing.T) {
		data := validData
		data.StartDate = "01.09.2026"
		require.True(t, errors.Is(data.Validate(), models.ErrValidation))
	})

	t.Run(`дата окончания раньше даты начала`, func(t *testing.T) {
		data := validData
		data.StartDate = "2026-09-03"
		data.EndDate = "2026-09-01"
		require.True(t, errors.Is(data.Validate(), models.ErrValidation))
	})

	t.Run(`заявка на один день`, func(t *testing.T) {
		data := validData
		data.EndDate = data.StartDate
		require.Nil(t, data.Validate())
	})
}

func TestLeaveFilter(t *testing.T) {
	t.Run(`пустой фильтр корректен`, func(t *testing.T) {
		require.Nil(t, LeaveFilter{}.Validate())
	})

	t.Run(`неизвестный статус`, func(t *testing.T) {
		filter := LeaveFilter{Status: "unknown"}
		require.True(t, errors.Is(filter.Validate(), models.ErrValidation))
	})

	t.Run(`разбор окна дат`, func(t *testing.T) {
		filter := LeaveFilter{DateFrom: "2026-09-01", DateTo: "2026-09-30"}
		require.Nil(t, filter.Validate())
		from, to, err := filter.GetRange()
		require.Nil(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)
		require.True(t, from.Before(*to))
	})

	t.Run(`неправильная дата в окне`, func(t *testing.T) {
		filter := LeaveFilter{DateFrom: "сентябрь"}
		require.True(t, errors.Is(filter.Validate(), models.ErrValidation))
	})
}

func TestLeaveRequestConvert(t *testing.T) {
	t.Run(`конвертация с владельцем и подсчетом дней`, func(t *testing.T) {
		rec := dbmodels.LeaveRequest{
			UserID:    "user-1",
			LeaveType: models.LeaveTypeVacation,
			StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Reason:    "отпуск",
			Status:    models.LeaveStatusApproved,
			User: &dbmodels.AppUser{
				UserName: "ivanov",
				Email:    "ivanov@example.com",
			},
		}
		rec.ID = "rec-1"
		view := LeaveRequestConvert(rec)
		require.Equal(t, "rec-1", view.ID)
		require.Equal(t, "ivanov", view.UserName)
		require.Equal(t, 14, view.DaysCount)
		require.Equal(t, "2026-09-01", view.StartDate)
		require.Equal(t, models.LeaveStatusApproved.ToHuman(), view.StatusName)
	})

	t.Run(`один день отпуска`, func(t *testing.T) {
		rec := dbmodels.LeaveRequest{
			StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}
		view := LeaveRequestConvert(rec)
		require.Equal(t, 1, view.DaysCount)
	})
}
