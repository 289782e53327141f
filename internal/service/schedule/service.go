package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule/models"
)

// Service сервис управления расписанием инструктора
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		location:     location,
		logger:       logger,
	}
}

// GetSchedule возвращает рабочие часы, периоды блокировки и длительность занятия
func (s *Service) GetSchedule(ctx context.Context, instructorID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for instructor=%d", instructorID)

	schedule := &domain.Schedule{}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		if schedule.WorkingHours, err = s.scheduleRepo.GetWorkingHours(txCtx, instructorID); err != nil {
			return fmt.Errorf("%w: GetSchedule - get working hours: %v", ErrInternal, err)
		}
		if schedule.BlockedRanges, err = s.scheduleRepo.GetBlockedRanges(txCtx, instructorID); err != nil {
			return fmt.Errorf("%w: GetSchedule - get blocked ranges: %v", ErrInternal, err)
		}
		if schedule.LessonDurationMinutes, err = s.scheduleRepo.GetLessonDuration(txCtx, instructorID); err != nil {
			return fmt.Errorf("%w: GetSchedule - get lesson duration: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("GetSchedule: failed for instructor=%d: %v", instructorID, err)
		return nil, err
	}

	return models.FromDomainSchedule(schedule, s.location), nil
}

// ReplaceWorkingHours заменяет все правила рабочих часов инструктора
// Пустой список допустим: инструктор перестает принимать записи
func (s *Service) ReplaceWorkingHours(ctx context.Context, req *models.ReplaceWorkingHoursRequest) ([]models.WorkingHourResponse, error) {
	s.logger.Info("ReplaceWorkingHours: replacing %d rules for instructor=%d", len(req.Rules), req.InstructorID)

	rules := req.ToDomainRules()
	if err := validateRules(rules); err != nil {
		s.logger.Warn("ReplaceWorkingHours: validation failed for instructor=%d: %v", req.InstructorID, err)
		return nil, err
	}

	var saved []domain.WorkingHourRule

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.ReplaceWorkingHours(txCtx, req.InstructorID, rules); err != nil {
			return fmt.Errorf("%w: ReplaceWorkingHours - repository error: %v", ErrInternal, err)
		}

		var err error
		if saved, err = s.scheduleRepo.GetWorkingHours(txCtx, req.InstructorID); err != nil {
			return fmt.Errorf("%w: ReplaceWorkingHours - reload rules: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("ReplaceWorkingHours: failed for instructor=%d: %v", req.InstructorID, err)
		return nil, err
	}

	resp := make([]models.WorkingHourResponse, 0, len(saved))
	for _, rule := range saved {
		resp = append(resp, models.FromDomainRule(rule))
	}

	s.logger.Info("ReplaceWorkingHours: saved %d rules for instructor=%d", len(resp), req.InstructorID)
	return resp, nil
}

// AddBlockedRange добавляет период блокировки (обе даты включительно)
// Уже существующие бронирования в этом периоде не отменяются
func (s *Service) AddBlockedRange(ctx context.Context, req *models.AddBlockedRangeRequest) (*models.BlockedRangeResponse, error) {
	s.logger.Info("AddBlockedRange: adding %s..%s for instructor=%d", req.StartDate, req.EndDate, req.InstructorID)

	start, err := parseDay(req.StartDate, s.location)
	if err != nil {
		return nil, err
	}
	end, err := parseDay(req.EndDate, s.location)
	if err != nil {
		return nil, err
	}

	blocked := &domain.BlockedRange{
		InstructorID: req.InstructorID,
		StartDate:    start,
		EndDate:      end,
		Reason:       req.Reason,
	}

	if !blocked.IsValid() {
		s.logger.Warn("AddBlockedRange: startDate after endDate for instructor=%d", req.InstructorID)
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockedRangeReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxBlockedRangeReasonLength)
	}

	created, err := s.scheduleRepo.CreateBlockedRange(ctx, blocked)
	if err != nil {
		s.logger.Error("AddBlockedRange: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: AddBlockedRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedRange: created blocked range id=%d for instructor=%d", created.ID, req.InstructorID)
	resp := models.FromDomainBlockedRange(*created, s.location)
	return &resp, nil
}

// DeleteBlockedRange удаляет период блокировки инструктора
func (s *Service) DeleteBlockedRange(ctx context.Context, instructorID, rangeID int64) error {
	s.logger.Info("DeleteBlockedRange: deleting blocked range id=%d for instructor=%d", rangeID, instructorID)

	if err := s.scheduleRepo.DeleteBlockedRange(ctx, rangeID, instructorID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedRangeNotFound) {
			s.logger.Warn("DeleteBlockedRange: blocked range id=%d not found for instructor=%d", rangeID, instructorID)
			return ErrBlockedRangeNotFound
		}
		s.logger.Error("DeleteBlockedRange: repository error for id=%d: %v", rangeID, err)
		return fmt.Errorf("%w: DeleteBlockedRange - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SetLessonDuration изменяет длительность занятия (60 или 90 минут)
// Существующие бронирования сохраняют свою длительность
func (s *Service) SetLessonDuration(ctx context.Context, req *models.SetLessonDurationRequest) (*models.LessonSettingsResponse, error) {
	s.logger.Info("SetLessonDuration: setting %d minutes for instructor=%d", req.DurationMinutes, req.InstructorID)

	if !domain.IsAllowedLessonDuration(req.DurationMinutes) {
		s.logger.Warn("SetLessonDuration: unsupported duration=%d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidInput, domain.AllowedLessonDurations)
	}

	if err := s.scheduleRepo.UpsertLessonDuration(ctx, req.InstructorID, req.DurationMinutes); err != nil {
		s.logger.Error("SetLessonDuration: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: SetLessonDuration - repository error: %v", ErrInternal, err)
	}

	return &models.LessonSettingsResponse{DurationMinutes: req.DurationMinutes}, nil
}
