package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie issued on login and registration.
const CookieName = "session"

// SignToken appends an HMAC-SHA256 signature so a tampered cookie is
// rejected without a store lookup.
func SignToken(token, secret string) string {
	return token + "." + signature(token, secret)
}

// ParseSignedToken verifies the signature and returns the raw token.
func ParseSignedToken(value, secret string) (string, bool) {
	idx := strings.LastIndexByte(value, '.')
	if idx <= 0 {
		return "", false
	}
	token, sig := value[:idx], value[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(signature(token, secret))) {
		return "", false
	}
	return token, true
}

func signature(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// WriteCookie sets the signed session cookie on the response.
func WriteCookie(c echo.Context, token, secret string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    SignToken(token, secret),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the response.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
