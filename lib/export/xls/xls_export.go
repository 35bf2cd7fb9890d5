package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	leaveapimodels "leave-tracking-backend/models/api/leave"
)

type Provider interface {
	ExportLeaveList(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var leaveHeaders = []string{"Сотрудник", "Почта", "Тип отпуска", "Дата начала", "Дата окончания", "Дней", "Причина", "Статус", "Комментарий", "Дата подачи"}

func (i impl) ExportLeaveList(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, leaveHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeLeaveData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Заявки на отпуск")
	return f.WriteToBuffer()
}

func writeLeaveData(f *excelize.File, sheet string, list []leaveapimodels.LeaveRequestView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(leaveHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.UserName); err != nil {
			return row, err
		}

		// "Почта"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		// "Тип отпуска"
		col++
		if err := writeColumn(f, sheet, col, row, item.LeaveTypeName); err != nil {
			return row, err
		}

		// "Дата начала"
		col++
		if err := writeColumn(f, sheet, col, row, item.StartDate); err != nil {
			return row, err
		}

		// "Дата окончания"
		col++
		if err := writeColumn(f, sheet, col, row, item.EndDate); err != nil {
			return row, err
		}

		// "Дней"
		col++
		if err := writeColumn(f, sheet, col, row, item.DaysCount); err != nil {
			return row, err
		}

		// "Причина"
		col++
		if err := writeColumn(f, sheet, col, row, item.Reason); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatusName); err != nil {
			return row, err
		}

		// "Комментарий"
		col++
		if err := writeColumn(f, sheet, col, row, item.AdminComment); err != nil {
			return row, err
		}

		// "Дата подачи"
		col++
		if !item.SubmittedOn.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedOn.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
