package models

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

var leaveStatusHumanName = map[LeaveStatus]string{
	LeaveStatusPending:  "На рассмотрении",
	LeaveStatusApproved: "Согласована",
	LeaveStatusRejected: "Отклонена",
}

func (s LeaveStatus) ToHuman() string {
	if human, exist := leaveStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s LeaveStatus) IsValid() bool {
	_, exist := leaveStatusHumanName[s]
	return exist
}

// IsDecision - статус является решением админа по заявке
func (s LeaveStatus) IsDecision() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeVacation  LeaveType = "vacation"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeOther     LeaveType = "other"
)

var leaveTypeHumanName = map[LeaveType]string{
	LeaveTypeSick:      "Больничный",
	LeaveTypeCasual:    "Отгул",
	LeaveTypeVacation:  "Отпуск",
	LeaveTypeEmergency: "Экстренный отпуск",
	LeaveTypeOther:     "Другое",
}

func (t LeaveType) ToHuman() string {
	if human, exist := leaveTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t LeaveType) IsValid() bool {
	_, exist := leaveTypeHumanName[t]
	return exist
}
