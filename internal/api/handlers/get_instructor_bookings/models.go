package get_instructor_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from и to - календарные дни в часовом поясе сервиса, оба включительно
func ToServiceRequest(
	instructorID int64,
	fromStr string,
	toStr string,
	statusStr string,
	includeCancelledStr string,
	loc *time.Location,
) (*models.GetInstructorBookingsRequest, error) {
	req := &models.GetInstructorBookingsRequest{
		InstructorID: instructorID,
	}

	if fromStr != "" {
		from, err := time.ParseInLocation(domain.DateFormat, fromStr, loc)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := time.ParseInLocation(domain.DateFormat, toStr, loc)
		if err != nil {
			return nil, err
		}
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
