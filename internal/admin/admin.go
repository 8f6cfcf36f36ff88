package admin

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const CookieAdmin = "admin_session"

const sessionTTL = 12 * time.Hour

// ErrBadCredentials — неверный пароль администратора.
var ErrBadCredentials = errors.New("неверный пароль")

// Auth проверяет единственный административный пароль и выдает
// подписанную cookie сессии. Токен — unix-время истечения плюс
// HMAC-подпись, хранить сессии на сервере не нужно.
type Auth struct {
	password string
	secret   []byte
}

func NewAuth(password, secret string) *Auth {
	return &Auth{password: password, secret: []byte(secret)}
}

// Login сверяет пароль и ставит cookie администратора.
func (a *Auth) Login(w http.ResponseWriter, password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return ErrBadCredentials
	}

	expires := time.Now().Add(sessionTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieAdmin,
		Value:    a.token(expires.Unix()),
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Logout удаляет cookie администратора.
func (a *Auth) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieAdmin,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// IsAdmin проверяет подпись и срок токена из запроса.
func (a *Auth) IsAdmin(r *http.Request) bool {
	c, err := r.Cookie(CookieAdmin)
	if err != nil || c.Value == "" {
		return false
	}

	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return false
	}

	exp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return false
	}

	expected := a.sign(parts[0])
	return hmac.Equal([]byte(parts[1]), []byte(expected))
}

func (a *Auth) token(exp int64) string {
	payload := strconv.FormatInt(exp, 10)
	return fmt.Sprintf("%s.%s", payload, a.sign(payload))
}

func (a *Auth) sign(payload string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
