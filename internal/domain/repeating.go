package domain

import (
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser — парсер cron-выражений (минуты часы дни месяцы дни_недели).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// RepeatTarget — куда направляется повторяющееся назначение:
// конкретному аккаунту либо тегам со стратегией распределения.
type RepeatTarget struct {
	Account        *AccountID         `json:"account,omitempty"`
	Tags           map[TagID]struct{} `json:"tags,omitempty"`
	AssignmentType *AssignmentType    `json:"assignment_type,omitempty"`
}

// RepeatingTask — периодическое назначение набора каталожных задач.
//
// Точка расширения: сущность и порт запроса определены, автоматическое
// потребление планировщиком не реализовано.
type RepeatingTask struct {
	ID                TaskID            `json:"id"`
	Organization      OrganizationID    `json:"organization"`
	RequestingAccount AccountID         `json:"requesting_account"`
	Tasks             []CatalogueTaskID `json:"tasks"`
	Target            RepeatTarget      `json:"target"`

	// CronExpr — cron-выражение расписания. Если задано,
	// PeriodDays игнорируется.
	CronExpr string `json:"cron_expr,omitempty"`

	// PeriodDays — период в днях между назначениями.
	PeriodDays int `json:"period_days,omitempty"`

	// LastAssigned — время последнего выполненного назначения.
	LastAssigned time.Time `json:"last_assigned"`
}

// NextDue вычисляет следующее время назначения после from.
// Расписание без cron-выражения и с неположительным периодом
// невалидно — ErrInvalidRepeatingTask.
func (r RepeatingTask) NextDue(from time.Time) (time.Time, error) {
	if r.CronExpr != "" {
		schedule, err := cronParser.Parse(r.CronExpr)
		if err != nil {
			return time.Time{}, ErrInvalidRepeatingTask
		}
		return schedule.Next(from).UTC(), nil
	}
	if r.PeriodDays > 0 {
		return from.AddDate(0, 0, r.PeriodDays).UTC(), nil
	}
	return time.Time{}, ErrInvalidRepeatingTask
}

// IsDue проверяет, пора ли выполнять назначение.
func (r RepeatingTask) IsDue(now time.Time) (bool, error) {
	next, err := r.NextDue(r.LastAssigned)
	if err != nil {
		return false, err
	}
	return !now.Before(next), nil
}
