package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/psqlbuilder"
)

// Repository репозиторий расписания: рабочие часы, блокировки и длительность занятия
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours возвращает все правила рабочих часов инструктора (включая неактивные)
func (r *Repository) GetWorkingHours(ctx context.Context, instructorID int64) ([]domain.WorkingHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
	).
		From("working_hours").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.WorkingHourRule, 0)
	for rows.Next() {
		var rule domain.WorkingHourRule
		var day int

		if err := rows.Scan(&rule.ID, &rule.InstructorID, &day, &rule.StartTime, &rule.EndTime, &rule.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
		}
		rule.DayOfWeek = time.Weekday(day)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceWorkingHours заменяет все правила инструктора новым набором
// Удаление и вставка должны выполняться в одной транзакции
func (r *Repository) ReplaceWorkingHours(ctx context.Context, instructorID int64, rules []domain.WorkingHourRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns("instructor_id", "day_of_week", "start_time", "end_time", "is_active")

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(instructorID, int(rule.DayOfWeek), rule.StartTime, rule.EndTime, rule.IsActive)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBlockedRanges возвращает периоды блокировки инструктора, отсортированные по началу
func (r *Repository) GetBlockedRanges(ctx context.Context, instructorID int64) ([]domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "instructor_id", "start_date", "end_date", "reason").
		From("blocked_dates").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.BlockedRange, 0)
	for rows.Next() {
		var blocked domain.BlockedRange
		var reason sql.NullString

		if err := rows.Scan(&blocked.ID, &blocked.InstructorID, &blocked.StartDate, &blocked.EndDate, &reason); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedRanges - scan row: %v", ErrScanRow, err)
		}
		if reason.Valid {
			blocked.Reason = &reason.String
		}
		ranges = append(ranges, blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// CreateBlockedRange добавляет период блокировки
func (r *Repository) CreateBlockedRange(ctx context.Context, blocked *domain.BlockedRange) (*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("instructor_id", "start_date", "end_date", "reason").
		Values(blocked.InstructorID, blocked.StartDate, blocked.EndDate, blocked.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedRange - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedRange - execute insert: %v", ErrExecQuery, err)
	}

	return blocked, nil
}

// DeleteBlockedRange удаляет период блокировки, принадлежащий инструктору
// Чужой или несуществующий период дает ErrBlockedRangeNotFound
func (r *Repository) DeleteBlockedRange(ctx context.Context, id, instructorID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id, "instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedRange - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedRangeNotFound
	}

	return nil
}

// GetLessonDuration возвращает длительность занятия инструктора в минутах
// Если настройки не сохранены, возвращается domain.DefaultLessonDurationMinutes
func (r *Repository) GetLessonDuration(ctx context.Context, instructorID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("duration_minutes").
		From("lesson_settings").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetLessonDuration - build select query: %v", ErrBuildQuery, err)
	}

	var duration int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&duration)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultLessonDurationMinutes, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetLessonDuration - scan duration: %v", ErrScanRow, err)
	}

	return duration, nil
}

// UpsertLessonDuration сохраняет длительность занятия
func (r *Repository) UpsertLessonDuration(ctx context.Context, instructorID int64, durationMinutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lesson_settings").
		Columns("instructor_id", "duration_minutes").
		Values(instructorID, durationMinutes).
		Suffix("ON CONFLICT (instructor_id) DO UPDATE SET duration_minutes = EXCLUDED.duration_minutes").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertLessonDuration - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertLessonDuration - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
