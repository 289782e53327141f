package instructors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	instructorRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/instructor"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/auth"
)

// Service сервис инструкторов: регистрация, вход, подписка
type Service struct {
	instructorRepo InstructorRepository
	settingsRepo   LessonSettingsRepository
	tokens         TokenIssuer
	txManager      TransactionManager
	timeProvider   TimeProvider
	trialDays      int
	logger         Logger
}

// NewService создает новый экземпляр сервиса инструкторов
func NewService(
	instructorRepo InstructorRepository,
	settingsRepo LessonSettingsRepository,
	tokens TokenIssuer,
	txManager TransactionManager,
	timeProvider TimeProvider,
	trialDays int,
	logger Logger,
) *Service {
	if trialDays <= 0 {
		trialDays = domain.DefaultTrialDays
	}
	return &Service{
		instructorRepo: instructorRepo,
		settingsRepo:   settingsRepo,
		tokens:         tokens,
		txManager:      txManager,
		timeProvider:   timeProvider,
		trialDays:      trialDays,
		logger:         logger,
	}
}

// Register регистрирует инструктора с пробным периодом и настройками занятия по умолчанию
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Register: registering instructor email=%s", email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	trialEndsAt := s.timeProvider.Now().AddDate(0, 0, s.trialDays)
	var created *domain.Instructor

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.instructorRepo.GetByEmail(txCtx, email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			return fmt.Errorf("%w: Register - check email: %v", ErrInternal, err)
		}

		slug, err := s.uniqueSlug(txCtx, req.Name)
		if err != nil {
			return err
		}

		created, err = s.instructorRepo.Create(txCtx, &domain.Instructor{
			Email:              email,
			PasswordHash:       passwordHash,
			Name:               strings.TrimSpace(req.Name),
			Slug:               slug,
			Phone:              req.Phone,
			SubscriptionStatus: domain.SubscriptionTrial,
			TrialEndsAt:        &trialEndsAt,
		})
		if err != nil {
			// Параллельная регистрация могла занять email или slug
			if errors.Is(err, instructorRepo.ErrDuplicate) {
				return ErrEmailTaken
			}
			return fmt.Errorf("%w: Register - create instructor: %v", ErrInternal, err)
		}

		if err := s.settingsRepo.UpsertLessonDuration(txCtx, created.ID, domain.DefaultLessonDurationMinutes); err != nil {
			return fmt.Errorf("%w: Register - create lesson settings: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", email)
		} else {
			s.logger.Error("Register: failed for email=%s: %v", email, err)
		}
		return nil, err
	}

	s.logger.Info("Register: created instructor id=%d slug=%s", created.ID, created.Slug)
	return s.authResponse(created)
}

// Login проверяет пароль и выпускает сессионный токен
// Неизвестный email и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Login: login attempt email=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	instructor, err := s.instructorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := auth.CheckPassword(instructor.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: wrong password for instructor id=%d", instructor.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: instructor id=%d logged in", instructor.ID)
	return s.authResponse(instructor)
}

// GetProfile возвращает данные инструктора
func (s *Service) GetProfile(ctx context.Context, instructorID int64) (*models.InstructorResponse, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("GetProfile: instructor id=%d not found", instructorID)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("GetProfile: repository error for id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructor(instructor), nil
}

// UpdateSubscriptionStatus устанавливает статус подписки (вызывается биллингом)
func (s *Service) UpdateSubscriptionStatus(ctx context.Context, instructorID int64, req *models.UpdateSubscriptionRequest) (*models.InstructorResponse, error) {
	s.logger.Info("UpdateSubscriptionStatus: instructor id=%d status=%s", instructorID, req.Status)

	status, ok := domain.ParseSubscriptionStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateSubscriptionStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: status must be trial, active or inactive", ErrInvalidInput)
	}

	updated, err := s.instructorRepo.UpdateSubscriptionStatus(ctx, instructorID, status)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("UpdateSubscriptionStatus: instructor id=%d not found", instructorID)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("UpdateSubscriptionStatus: repository error for id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: UpdateSubscriptionStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructor(updated), nil
}

// ExpireTrials переводит инструкторов с истекшим пробным периодом в inactive
func (s *Service) ExpireTrials(ctx context.Context) (int64, error) {
	expired, err := s.instructorRepo.ExpireTrials(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ExpireTrials: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireTrials - repository error: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireTrials: %d trial subscriptions expired", expired)
	}
	return expired, nil
}

func (s *Service) authResponse(instructor *domain.Instructor) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(instructor.ID, instructor.Email)
	if err != nil {
		s.logger.Error("authResponse: failed to issue token for instructor id=%d: %v", instructor.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &models.AuthResponse{
		Token:      token,
		ExpiresAt:  s.timeProvider.Now().Add(s.tokens.TTL()),
		Instructor: *models.FromDomainInstructor(instructor),
	}, nil
}
