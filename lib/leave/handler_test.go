package leavehandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	leavestore "leave-tracking-backend/lib/leave/store"
	"leave-tracking-backend/models"
	leaveapimodels "leave-tracking-backend/models/api/leave"
	dbmodels "leave-tracking-backend/models/db"
)

type storeStub struct {
	rec     *dbmodels.LeaveRequest
	created *dbmodels.LeaveRequest
	updMap  map[string]interface{}
	deleted bool
	list    []dbmodels.LeaveRequest
	stats   leaveapimodels.StatusStats
}

func (s *storeStub) Create(rec dbmodels.LeaveRequest) (string, error) {
	s.created = &rec
	return "new-id", nil
}

func (s *storeStub) GetByID(id string) (*dbmodels.LeaveRequest, error) {
	return s.rec, nil
}

func (s *storeStub) Update(id string, updMap map[string]interface{}) error {
	s.updMap = updMap
	return nil
}

func (s *storeStub) Delete(id string) error {
	s.deleted = true
	return nil
}

func (s *storeStub) List(userID string, filter leaveapimodels.LeaveFilter) ([]dbmodels.LeaveRequest, error) {
	return s.list, nil
}

func (s *storeStub) ListCount(userID string, filter leaveapimodels.LeaveFilter) (int64, error) {
	return int64(len(s.list)), nil
}

func (s *storeStub) CountByStatus(userID string) (leaveapimodels.StatusStats, error) {
	return s.stats, nil
}

func (s *storeStub) StatsForUsers(userIDs []string) ([]leavestore.UserStatusCount, error) {
	return nil, nil
}

func newData() leaveapimodels.LeaveRequestData {
	return leaveapimodels.LeaveRequestData{
		LeaveType: models.LeaveTypeVacation,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "отпуск у моря",
	}
}

func pendingRec(userID string) *dbmodels.LeaveRequest {
	rec := dbmodels.LeaveRequest{
		UserID:    userID,
		LeaveType: models.LeaveTypeVacation,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Reason:    "отпуск у моря",
		Status:    models.LeaveStatusPending,
	}
	rec.ID = "rec-1"
	return &rec
}

func TestCreate(t *testing.T) {
	t.Run(`сотрудник создает заявку в статусе на рассмотрении`, func(t *testing.T) {
		store := &storeStub{}
		h := impl{store: store, allowRedecide: true}
		id, err := h.Create("user-1", models.EmployeeRole, newData())
		require.Nil(t, err)
		require.Equal(t, "new-id", id)
		require.NotNil(t, store.created)
		require.Equal(t, "user-1", store.created.UserID)
		require.Equal(t, models.LeaveStatusPending, store.created.Status)
	})

	t.Run(`администратор не может подать заявку`, func(t *testing.T) {
		store := &storeStub{}
		h := impl{store: store, allowRedecide: true}
		_, err := h.Create("admin-1", models.AdminRole, newData())
		require.True(t, errors.Is(err, models.ErrForbidden))
		require.Nil(t, store.created)
	})

	t.Run(`дата окончания раньше даты начала`, func(t *testing.T) {
		store := &storeStub{}
		h := impl{store: store, allowRedecide: true}
		data := newData()
		data.StartDate = "2026-09-05"
		data.EndDate = "2026-09-01"
		_, err := h.Create("user-1", models.EmployeeRole, data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestGetByID(t *testing.T) {
	t.Run(`владелец видит свою заявку`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		item, err := h.GetByID("user-1", models.EmployeeRole, "rec-1")
		require.Nil(t, err)
		require.Equal(t, "rec-1", item.ID)
		require.Equal(t, 5, item.DaysCount)
	})

	t.Run(`чужая заявка для сотрудника неотличима от несуществующей`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-2")}
		h := impl{store: store, allowRedecide: true}
		_, err := h.GetByID("user-1", models.EmployeeRole, "rec-1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`админ видит любую заявку`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-2")}
		h := impl{store: store, allowRedecide: true}
		item, err := h.GetByID("admin-1", models.AdminRole, "rec-1")
		require.Nil(t, err)
		require.Equal(t, "rec-1", item.ID)
	})

	t.Run(`несуществующая заявка`, func(t *testing.T) {
		store := &storeStub{}
		h := impl{store: store, allowRedecide: true}
		_, err := h.GetByID("user-1", models.EmployeeRole, "rec-1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`владелец редактирует заявку на рассмотрении`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		err := h.Update("user-1", models.EmployeeRole, "rec-1", newData())
		require.Nil(t, err)
		require.NotNil(t, store.updMap)
		require.Equal(t, models.LeaveTypeVacation, store.updMap["leave_type"])
	})

	t.Run(`рассмотренную заявку редактировать нельзя`, func(t *testing.T) {
		rec := pendingRec("user-1")
		rec.Status = models.LeaveStatusApproved
		store := &storeStub{rec: rec}
		h := impl{store: store, allowRedecide: true}
		err := h.Update("user-1", models.EmployeeRole, "rec-1", newData())
		require.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run(`чужую заявку редактировать нельзя`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-2")}
		h := impl{store: store, allowRedecide: true}
		err := h.Update("user-1", models.EmployeeRole, "rec-1", newData())
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestDelete(t *testing.T) {
	t.Run(`владелец удаляет заявку на рассмотрении`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		err := h.Delete("user-1", models.EmployeeRole, "rec-1")
		require.Nil(t, err)
		require.True(t, store.deleted)
	})

	t.Run(`владелец не может удалить рассмотренную заявку`, func(t *testing.T) {
		rec := pendingRec("user-1")
		rec.Status = models.LeaveStatusRejected
		store := &storeStub{rec: rec}
		h := impl{store: store, allowRedecide: true}
		err := h.Delete("user-1", models.EmployeeRole, "rec-1")
		require.True(t, errors.Is(err, models.ErrForbidden))
		require.False(t, store.deleted)
	})

	t.Run(`админ удаляет рассмотренную заявку`, func(t *testing.T) {
		rec := pendingRec("user-1")
		rec.Status = models.LeaveStatusApproved
		store := &storeStub{rec: rec}
		h := impl{store: store, allowRedecide: true}
		err := h.Delete("admin-1", models.AdminRole, "rec-1")
		require.Nil(t, err)
		require.True(t, store.deleted)
	})
}

func TestTransition(t *testing.T) {
	t.Run(`админ согласует заявку с комментарием`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		err := h.Transition("admin-1", models.AdminRole, "rec-1", models.LeaveStatusApproved, leaveapimodels.DecisionData{Comment: "хорошего отдыха"})
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusApproved, store.updMap["status"])
		require.Equal(t, "хорошего отдыха", store.updMap["admin_comment"])
	})

	t.Run(`сотрудник не может рассматривать заявки`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		err := h.Transition("user-1", models.EmployeeRole, "rec-1", models.LeaveStatusApproved, leaveapimodels.DecisionData{})
		require.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run(`перевод в статус на рассмотрении недопустим`, func(t *testing.T) {
		store := &storeStub{rec: pendingRec("user-1")}
		h := impl{store: store, allowRedecide: true}
		err := h.Transition("admin-1", models.AdminRole, "rec-1", models.LeaveStatusPending, leaveapimodels.DecisionData{})
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run(`повторное решение разрешено настройкой`, func(t *testing.T) {
		rec := pendingRec("user-1")
		rec.Status = models.LeaveStatusApproved
		store := &storeStub{rec: rec}
		h := impl{store: store, allowRedecide: true}
		err := h.Transition("admin-1", models.AdminRole, "rec-1", models.LeaveStatusRejected, leaveapimodels.DecisionData{})
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusRejected, store.updMap["status"])
	})

	t.Run(`повторное решение запрещено настройкой`, func(t *testing.T) {
		rec := pendingRec("user-1")
		rec.Status = models.LeaveStatusApproved
		store := &storeStub{rec: rec}
		h := impl{store: store, allowRedecide: false}
		err := h.Transition("admin-1", models.AdminRole, "rec-1", models.LeaveStatusRejected, leaveapimodels.DecisionData{})
		require.True(t, errors.Is(err, models.ErrForbidden))
	})
}

func TestList(t *testing.T) {
	t.Run(`список конвертируется в представление`, func(t *testing.T) {
		store := &storeStub{list: []dbmodels.LeaveRequest{*pendingRec("user-1")}}
		h := impl{store: store, allowRedecide: true}
		list, rowCount, err := h.List("user-1", models.EmployeeRole, leaveapimodels.LeaveFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, string(models.LeaveStatusPending), list[0].Status)
	})
}
