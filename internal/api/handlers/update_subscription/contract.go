package update_subscription

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

type InstructorService interface {
	UpdateSubscriptionStatus(ctx context.Context, instructorID int64, req *models.UpdateSubscriptionRequest) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
