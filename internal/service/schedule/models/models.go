package models

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

// Request модели

// WorkingHourRequest одно правило рабочих часов
type WorkingHourRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`          // 0 = воскресенье
	StartTime string `json:"startTime"`          // HH:MM
	EndTime   string `json:"endTime"`            // HH:MM, допускается 24:00
	IsActive  *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// ReplaceWorkingHoursRequest запрос на полную замену рабочих часов
type ReplaceWorkingHoursRequest struct {
	InstructorID int64                `json:"-"`
	Rules        []WorkingHourRequest `json:"rules"`
}

// ToDomainRules конвертирует правила в domain модели
func (r *ReplaceWorkingHoursRequest) ToDomainRules() []domain.WorkingHourRule {
	rules := make([]domain.WorkingHourRule, 0, len(r.Rules))
	for _, rule := range r.Rules {
		isActive := true
		if rule.IsActive != nil {
			isActive = *rule.IsActive
		}
		rules = append(rules, domain.WorkingHourRule{
			InstructorID: r.InstructorID,
			DayOfWeek:    time.Weekday(rule.DayOfWeek),
			StartTime:    types.TimeString(rule.StartTime),
			EndTime:      types.TimeString(rule.EndTime),
			IsActive:     isActive,
		})
	}
	return rules
}

// AddBlockedRangeRequest запрос на добавление периода блокировки
type AddBlockedRangeRequest struct {
	InstructorID int64   `json:"-"`
	StartDate    string  `json:"startDate"` // YYYY-MM-DD
	EndDate      string  `json:"endDate"`   // YYYY-MM-DD, включительно
	Reason       *string `json:"reason,omitempty"`
}

// SetLessonDurationRequest запрос на изменение длительности занятия
type SetLessonDurationRequest struct {
	InstructorID    int64 `json:"-"`
	DurationMinutes int   `json:"durationMinutes"`
}

// Response модели

// WorkingHourResponse правило рабочих часов
type WorkingHourResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// BlockedRangeResponse период блокировки
type BlockedRangeResponse struct {
	ID        int64   `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// LessonSettingsResponse настройки занятия
type LessonSettingsResponse struct {
	DurationMinutes int `json:"durationMinutes"`
}

// ScheduleResponse расписание инструктора целиком
type ScheduleResponse struct {
	WorkingHours          []WorkingHourResponse  `json:"workingHours"`
	BlockedRanges         []BlockedRangeResponse `json:"blockedRanges"`
	LessonDurationMinutes int                    `json:"lessonDurationMinutes"`
}

// Методы конвертации

// FromDomainRule конвертирует правило в DTO
func FromDomainRule(r domain.WorkingHourRule) WorkingHourResponse {
	return WorkingHourResponse{
		ID:        r.ID,
		DayOfWeek: int(r.DayOfWeek),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		IsActive:  r.IsActive,
	}
}

// FromDomainBlockedRange конвертирует период блокировки в DTO
// Даты выводятся в часовом поясе сервиса
func FromDomainBlockedRange(b domain.BlockedRange, loc *time.Location) BlockedRangeResponse {
	return BlockedRangeResponse{
		ID:        b.ID,
		StartDate: b.StartDate.In(loc).Format(domain.DateFormat),
		EndDate:   b.EndDate.In(loc).Format(domain.DateFormat),
		Reason:    b.Reason,
	}
}

// FromDomainSchedule конвертирует расписание в DTO
func FromDomainSchedule(s *domain.Schedule, loc *time.Location) *ScheduleResponse {
	resp := &ScheduleResponse{
		WorkingHours:          make([]WorkingHourResponse, 0, len(s.WorkingHours)),
		BlockedRanges:         make([]BlockedRangeResponse, 0, len(s.BlockedRanges)),
		LessonDurationMinutes: s.LessonDurationMinutes,
	}

	for _, rule := range s.WorkingHours {
		resp.WorkingHours = append(resp.WorkingHours, FromDomainRule(rule))
	}
	for _, blocked := range s.BlockedRanges {
		resp.BlockedRanges = append(resp.BlockedRanges, FromDomainBlockedRange(blocked, loc))
	}

	return resp
}
