package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken возвращается для просроченного, поддельного или некорректного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrPasswordMismatch возвращается, если пароль не совпадает с хешем
	ErrPasswordMismatch = errors.New("auth: password mismatch")
)

// RoleInstructor роль владельца расписания
const RoleInstructor = "instructor"

// Claims содержимое сессионного токена
type Claims struct {
	InstructorID int64  `json:"instructorId"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет сессионные токены (HS256)
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL время жизни токена
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает токен для инструктора
func (m *TokenManager) Issue(instructorID int64, email string) (string, error) {
	now := m.now()
	claims := Claims{
		InstructorID: instructorID,
		Email:        email,
		Role:         RoleInstructor,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify проверяет подпись и срок действия токена
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleInstructor || claims.InstructorID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword хеширует пароль bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хешем
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
