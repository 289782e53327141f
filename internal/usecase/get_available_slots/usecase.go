package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	instructorRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/instructor"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/availability"
)

// UseCase use case для получения доступности инструктора на публичной странице
type UseCase struct {
	instructorRepo InstructorRepository
	scheduleRepo   ScheduleRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	windowDays     int
	location       *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// windowDays - сколько дней вперед, начиная с завтра, открыто для записи;
// location - часовой пояс, в котором считаются календарные дни и время слотов
func NewUseCase(
	instructorRepo InstructorRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
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
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		windowDays:     windowDays,
		location:       location,
		logger:         logger,
	}
}

// Execute выполняет use case получения доступности
// Все чтения выполняются в одной read-only транзакции, поэтому расписание
// и бронирования относятся к одному снимку данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date != nil {
		uc.logger.Info("GetAvailableSlots: slug=%s, date=%s", req.Slug, req.Date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetAvailableSlots: slug=%s, window=%d days", req.Slug, uc.windowDays)
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Сегодняшний день в часовом поясе сервиса
	today := availability.DateOnly(uc.timeProvider.Now().In(uc.location))

	var day time.Time
	if req.Date != nil {
		y, m, d := req.Date.Date()
		day = time.Date(y, m, d, 0, 0, 0, 0, uc.location)

		if err := validateDate(day, today, uc.windowDays); err != nil {
			uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
			return nil, err
		}
	}

	var response *Response

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 3. Получаем инструктора
		instructor, err := uc.instructorRepo.GetBySlug(txCtx, req.Slug)
		if err != nil {
			if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
				uc.logger.Warn("GetAvailableSlots: instructor slug=%s not found", req.Slug)
				return ErrInstructorNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get instructor slug=%s: %v", req.Slug, err)
			return fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
		}

		if !instructor.AcceptsBookings() {
			uc.logger.Warn("GetAvailableSlots: instructor id=%d is inactive", instructor.ID)
			return ErrInstructorInactive
		}

		// 4. Получаем расписание
		schedule, err := uc.loadSchedule(txCtx, instructor.ID)
		if err != nil {
			return err
		}

		response = &Response{
			InstructorID:          instructor.ID,
			InstructorName:        instructor.Name,
			LessonDurationMinutes: schedule.LessonDurationMinutes,
		}

		// 5. Бронирования за весь запрошенный период одним запросом
		from, to := today.AddDate(0, 0, 1), today.AddDate(0, 0, uc.windowDays+1)
		if req.Date != nil {
			from, to = day, day.AddDate(0, 0, 1)
		}

		bookings, err := uc.bookingRepo.GetOverlapping(txCtx, instructor.ID, domain.Interval{Start: from, End: to})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings for instructor id=%d: %v", instructor.ID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6. Считаем доступность
		if req.Date != nil {
			response.Date = &day
			response.Slots = toSlots(availability.AvailableSlots(
				day, schedule.WorkingHours, schedule.BlockedRanges, bookings, schedule.LessonDurationMinutes,
			))
			return nil
		}

		dates := availability.AvailableDates(today, uc.windowDays, schedule.WorkingHours, schedule.BlockedRanges)
		response.Dates = make([]Date, 0, len(dates))
		for _, date := range dates {
			slots := availability.AvailableSlots(
				date, schedule.WorkingHours, schedule.BlockedRanges, bookings, schedule.LessonDurationMinutes,
			)
			response.Dates = append(response.Dates, Date{Date: date, SlotsCount: len(slots)})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		uc.logger.Info("GetAvailableSlots: %d slots for instructor id=%d on %s",
			len(response.Slots), response.InstructorID, day.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetAvailableSlots: %d open dates for instructor id=%d", len(response.Dates), response.InstructorID)
	}

	return response, nil
}

func (uc *UseCase) loadSchedule(ctx context.Context, instructorID int64) (*domain.Schedule, error) {
	rules, err := uc.scheduleRepo.GetWorkingHours(ctx, instructorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	blocked, err := uc.scheduleRepo.GetBlockedRanges(ctx, instructorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked ranges for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get blocked ranges: %v", ErrInternal, err)
	}

	duration, err := uc.scheduleRepo.GetLessonDuration(ctx, instructorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get lesson duration for instructor id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to get lesson duration: %v", ErrInternal, err)
	}

	return &domain.Schedule{
		WorkingHours:          rules,
		BlockedRanges:         blocked,
		LessonDurationMinutes: duration,
	}, nil
}

func toSlots(available []domain.AvailableSlot) []Slot {
	slots := make([]Slot, len(available))
	for i, s := range available {
		slots[i] = Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			Start:           s.Start,
			End:             s.End,
		}
	}
	return slots
}
