package instructors

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

const (
	maxNameLength     = 100
	maxPasswordLength = 72 // ограничение bcrypt
)

// normalizeEmail приводит email к виду, в котором он хранится
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegister проверяет запрос на регистрацию
func validateRegister(req *models.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}
	email := strings.TrimSpace(req.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if len(req.Password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
