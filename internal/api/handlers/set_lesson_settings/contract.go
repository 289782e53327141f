package set_lesson_settings

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	SetLessonDuration(ctx context.Context, req *models.SetLessonDurationRequest) (*models.LessonSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
