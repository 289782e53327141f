package handlers

import (
	"net/http"
	"time"
)

// SessionCookie настройки cookie сессии
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set записывает токен сессии в HttpOnly cookie
func (c SessionCookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
