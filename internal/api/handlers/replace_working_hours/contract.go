package replace_working_hours

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceWorkingHours(ctx context.Context, req *models.ReplaceWorkingHoursRequest) ([]models.WorkingHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
