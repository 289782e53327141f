package instructor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var instructorColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"slug",
	"phone",
	"bio",
	"subscription_status",
	"trial_ends_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий инструкторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инструкторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает инструктора
func (r *Repository) Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructors").
		Columns(
			"email",
			"password_hash",
			"name",
			"slug",
			"phone",
			"bio",
			"subscription_status",
			"trial_ends_at",
		).
		Values(
			instructor.Email,
			instructor.PasswordHash,
			instructor.Name,
			instructor.Slug,
			instructor.Phone,
			instructor.Bio,
			instructor.SubscriptionStatus,
			instructor.TrialEndsAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&instructor.ID, &createdAt, &updatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return instructor, nil
}

// GetByID получает инструктора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// GetBySlug получает инструктора по публичному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Instructor, error) {
	return r.getOne(ctx, "GetBySlug", squirrel.Eq{"slug": slug}, false)
}

// GetByEmail получает инструктора по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Instructor, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email}, false)
}

// LockForBooking блокирует строку инструктора до конца транзакции (SELECT ... FOR UPDATE)
// Все создания бронирований одного инструктора выполняются последовательно,
// так проверка пересечений и вставка не разделяются чужой записью.
// Вне транзакции блокировка не берется.
func (r *Repository) LockForBooking(ctx context.Context, id int64) (*domain.Instructor, error) {
	return r.getOne(ctx, "LockForBooking", squirrel.Eq{"id": id}, dbmetrics.IsInTransaction(ctx))
}

// SlugExists проверяет, занят ли slug
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("instructors").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateSubscriptionStatus меняет статус подписки
func (r *Repository) UpdateSubscriptionStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instructors").
		Set("subscription_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSubscriptionStatus - build update query: %v", ErrBuildQuery, err)
	}

	instructor, err := scanInstructor(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSubscriptionStatus - execute update: %v", ErrExecQuery, err)
	}

	return instructor, nil
}

// ExpireTrials переводит в inactive всех инструкторов, чей пробный период закончился к now
// Возвращает количество обновленных строк
func (r *Repository) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instructors").
		Set("subscription_status", domain.SubscriptionInactive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"subscription_status": domain.SubscriptionTrial}).
		Where(squirrel.LtOrEq{"trial_ends_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireTrials - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireTrials - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireTrials - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq, forUpdate bool) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(where)

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	instructor, err := scanInstructor(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan instructor: %v", ErrScanRow, op, err)
	}

	return instructor, nil
}

func scanInstructor(row *sql.Row) (*domain.Instructor, error) {
	var instructor domain.Instructor
	var phone, bio sql.NullString
	var trialEndsAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&instructor.ID,
		&instructor.Email,
		&instructor.PasswordHash,
		&instructor.Name,
		&instructor.Slug,
		&phone,
		&bio,
		&instructor.SubscriptionStatus,
		&trialEndsAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		instructor.Phone = &phone.String
	}
	if bio.Valid {
		instructor.Bio = &bio.String
	}
	if trialEndsAt.Valid {
		instructor.TrialEndsAt = &trialEndsAt.Time
	}
	instructor.CreatedAt = createdAt.Time
	instructor.UpdatedAt = updatedAt.Time

	return &instructor, nil
}

func columnList() string {
	return strings.Join(instructorColumns, ", ")
}
