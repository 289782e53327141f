package trialexpiry

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule запуск каждые 15 минут
const DefaultSchedule = "@every 15m"

// Expirer переводит просроченные пробные подписки в inactive
type Expirer interface {
	ExpireTrials(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Job периодическая задача истечения пробного периода
type Job struct {
	cron     *cron.Cron
	expirer  Expirer
	schedule string
	timeout  time.Duration
	logger   Logger
}

// NewJob создает задачу. Пустое расписание заменяется на DefaultSchedule
func NewJob(expirer Expirer, schedule string, timeout time.Duration, logger Logger) *Job {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Job{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		expirer:  expirer,
		schedule: schedule,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (j *Job) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("trialexpiry: invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("TrialExpiry: scheduler started with schedule=%s", j.schedule)
	return nil
}

// Stop останавливает планировщик и ждет завершения выполняющейся задачи
func (j *Job) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
		j.logger.Info("TrialExpiry: scheduler stopped")
	case <-ctx.Done():
		j.logger.Error("TrialExpiry: stop interrupted: %v", ctx.Err())
	}
}

// Run выполняет один проход
func (j *Job) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	expired, err := j.expirer.ExpireTrials(ctx)
	if err != nil {
		j.logger.Error("TrialExpiry: run failed: %v", err)
		return
	}

	j.logger.Info("TrialExpiry: run completed, expired=%d", expired)
}
