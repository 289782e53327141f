package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/booking"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings/models"
)

// Service сервис бронирований для кабинета инструктора
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetInstructorBookings получает бронирования инструктора с фильтрацией
// Без фильтра по статусу отмененные исключаются, если не указан IncludeCancelled
func (s *Service) GetInstructorBookings(ctx context.Context, req *models.GetInstructorBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetInstructorBookings: fetching bookings for instructor=%d", req.InstructorID)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetInstructorBookings: empty period for instructor=%d", req.InstructorID)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetInstructorBookings: invalid filter for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByInstructorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetInstructorBookings: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: GetInstructorBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetInstructorBookings: successfully fetched %d bookings for instructor=%d", len(bookings), req.InstructorID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
// Доступно только инструктору-владельцу
func (s *Service) GetByID(ctx context.Context, bookingID, instructorID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for instructor=%d", bookingID, instructorID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(instructorID) {
		s.logger.Warn("GetByID: instructor=%d is not the owner of booking id=%d", instructorID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только инструктору-владельцу. Переходы не ограничиваются:
// любой из pending/confirmed/cancelled принимается из любого состояния.
// Причина отмены сохраняется только при переводе в cancelled.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by instructor=%d",
		bookingID, req.Status, req.InstructorID)

	var updated *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем бронирование (строка блокируется до конца транзакции)
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		// Проверяем права доступа
		if !booking.BelongsTo(req.InstructorID) {
			s.logger.Warn("UpdateStatus: instructor=%d is not the owner of booking id=%d", req.InstructorID, bookingID)
			return ErrAccessDenied
		}

		// Валидируем и конвертируем статус
		newStatus, err := models.ToDomainBookingStatus(req.Status)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
			return fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}

		var reason *string
		if newStatus == domain.StatusCancelled && req.CancellationReason != nil {
			if len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
				return fmt.Errorf("%w: cancellationReason must be at most %d characters",
					ErrInvalidInput, domain.MaxCancellationReasonLength)
			}
			reason = req.CancellationReason
		}

		updated, err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus, reason)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				s.logger.Warn("UpdateStatus: booking id=%d overlaps an active booking", bookingID)
				return ErrSlotNotAvailable
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}
