package register

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

type InstructorService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
