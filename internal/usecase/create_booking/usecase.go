package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/booking"
	instructorRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/instructor"
)

// UseCase use case для создания бронирования с публичной страницы
type UseCase struct {
	instructorRepo InstructorRepository
	scheduleRepo   ScheduleRepository
	bookingRepo    BookingRepository
	checker        ConflictChecker
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	windowDays     int
	location       *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	instructorRepo InstructorRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	metrics Metrics,
	windowDays int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultAvailabilityWindowDays
	}
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		instructorRepo: instructorRepo,
		scheduleRepo:   scheduleRepo,
		bookingRepo:    bookingRepo,
		checker:        checker,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		windowDays:     windowDays,
		location:       location,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Порядок: поля запроса -> инструктор существует -> подписка не inactive ->
// в транзакции: блокировка строки инструктора, сверка с сеткой расписания,
// проверка пересечений, вставка со статусом pending.
// Записи к одному инструктору выполняются последовательно (FOR UPDATE на его строке).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: instructor=%d, start=%s, end=%s",
		req.InstructorID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем инструктора
	instructor, err := uc.instructorRepo.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			uc.logger.Warn("CreateBooking: instructor id=%d not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get instructor id=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	if !instructor.AcceptsBookings() {
		uc.logger.Warn("CreateBooking: instructor id=%d is inactive", instructor.ID)
		return nil, ErrInstructorInactive
	}

	var result *domain.Booking

	// 4. Проверка и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем инструктора; статус перечитывается под блокировкой
		locked, err := uc.instructorRepo.LockForBooking(txCtx, req.InstructorID)
		if err != nil {
			if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
				return ErrInstructorNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock instructor id=%d: %v", req.InstructorID, err)
			return fmt.Errorf("%w: failed to lock instructor: %v", ErrInternal, err)
		}
		if !locked.AcceptsBookings() {
			uc.logger.Warn("CreateBooking: instructor id=%d became inactive", locked.ID)
			return ErrInstructorInactive
		}

		// 4.2. Сверяем интервал с сеткой расписания
		schedule, err := uc.loadSchedule(txCtx, req.InstructorID)
		if err != nil {
			return err
		}

		if err := validateAgainstSchedule(req.StartTime, req.EndTime, now, uc.location, uc.windowDays, schedule); err != nil {
			uc.logger.Warn("CreateBooking: schedule validation failed for instructor id=%d: %v", req.InstructorID, err)
			return err
		}

		// 4.3. Проверяем пересечения с активными бронированиями
		conflict, err := uc.checker.HasConflict(txCtx, req.InstructorID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateBooking: slot %s is taken for instructor id=%d",
				req.StartTime.Format(time.RFC3339), req.InstructorID)
			return ErrSlotNotAvailable
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			InstructorID: req.InstructorID,
			ClientName:   strings.TrimSpace(req.ClientName),
			ClientPhone:  strings.TrimSpace(req.ClientPhone),
			ClientEmail:  strings.TrimSpace(req.ClientEmail),
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: overlap rejected by database for instructor id=%d", req.InstructorID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict()
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		InstructorID: result.InstructorID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

func (uc *UseCase) loadSchedule(ctx context.Context, instructorID int64) (*domain.Schedule, error) {
	rules, err := uc.scheduleRepo.GetWorkingHours(ctx, instructorID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get working hours for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	blocked, err := uc.scheduleRepo.GetBlockedRanges(ctx, instructorID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blocked ranges for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get blocked ranges: %v", ErrInternal, err)
	}

	duration, err := uc.scheduleRepo.GetLessonDuration(ctx, instructorID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get lesson duration for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get lesson duration: %v", ErrInternal, err)
	}

	return &domain.Schedule{
		WorkingHours:          rules,
		BlockedRanges:         blocked,
		LessonDurationMinutes: duration,
	}, nil
}
