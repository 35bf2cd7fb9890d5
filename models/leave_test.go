package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaveStatus(t *testing.T) {
	t.Run(`допустимые статусы`, func(t *testing.T) {
		require.True(t, LeaveStatusPending.IsValid())
		require.True(t, LeaveStatusApproved.IsValid())
		require.True(t, LeaveStatusRejected.IsValid())
		require.False(t, LeaveStatus("cancelled").IsValid())
		require.False(t, LeaveStatus("Pending").IsValid())
	})

	t.Run(`решением являются только согласована и отклонена`, func(t *testing.T) {
		require.False(t, LeaveStatusPending.IsDecision())
		require.True(t, LeaveStatusApproved.IsDecision())
		require.True(t, LeaveStatusRejected.IsDecision())
	})

	t.Run(`человеческое название`, func(t *testing.T) {
		require.Equal(t, "На рассмотрении", LeaveStatusPending.ToHuman())
		require.Equal(t, "draft", LeaveStatus("draft").ToHuman())
	})
}

func TestLeaveType(t *testing.T) {
	t.Run(`допустимые типы`, func(t *testing.T) {
		for _, lt := range []LeaveType{LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation, LeaveTypeEmergency, LeaveTypeOther} {
			require.True(t, lt.IsValid())
		}
		require.False(t, LeaveType("holiday").IsValid())
		require.False(t, LeaveType("Sick").IsValid())
	})
}

func TestUserRole(t *testing.T) {
	t.Run(`только админ является админом`, func(t *testing.T) {
		require.True(t, AdminRole.IsAdmin())
		require.False(t, EmployeeRole.IsAdmin())
		require.False(t, UserRole("superadmin").IsAdmin())
	})
}
