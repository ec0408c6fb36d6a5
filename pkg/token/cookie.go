package token

import (
	"net/http"
	"time"
)

// CookieSetter writes and clears the session token cookie.
type CookieSetter struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
}

// NewCookieSetter creates a cookie setter with the given transport flags.
func NewCookieSetter(httpOnly, secure bool) *CookieSetter {
	return &CookieSetter{
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetCookie sets the session cookie with the given value and expiry.
func (c *CookieSetter) SetCookie(w http.ResponseWriter, tokenValue string, expire time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionTokenName,
		Path:     c.Path,
		Value:    tokenValue,
		Expires:  expire,
		HttpOnly: c.HttpOnly,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// ClearCookie clears the session cookie.
func (c *CookieSetter) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionTokenName,
		Path:     c.Path,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: c.HttpOnly,
		Secure:   c.Secure,
	})
}
