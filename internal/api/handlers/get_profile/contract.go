package get_profile

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

type InstructorService interface {
	GetProfile(ctx context.Context, instructorID int64) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
