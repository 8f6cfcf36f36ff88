package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestAuth_LoginLogout(t *testing.T) {
	auth := NewAuth("секрет123", "signing-key")

	t.Run("неверный пароль", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.ErrorIs(t, auth.Login(w, "не тот"), ErrBadCredentials)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("верный пароль дает рабочую сессию", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, auth.Login(w, "секрет123"))
		assert.True(t, auth.IsAdmin(requestWithCookies(w)))
	})

	t.Run("logout гасит cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		auth.Logout(w)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieAdmin, cookies[0].Name)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})
}

func TestAuth_IsAdminRejectsForgery(t *testing.T) {
	auth := NewAuth("секрет123", "signing-key")

	t.Run("без cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		assert.False(t, auth.IsAdmin(r))
	})

	t.Run("токен с чужой подписью", func(t *testing.T) {
		other := NewAuth("секрет123", "another-key")
		w := httptest.NewRecorder()
		require.NoError(t, other.Login(w, "секрет123"))
		assert.False(t, auth.IsAdmin(requestWithCookies(w)))
	})

	t.Run("истекший токен", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		expired := time.Now().Add(-time.Hour).Unix()
		r.AddCookie(&http.Cookie{Name: CookieAdmin, Value: auth.token(expired)})
		assert.False(t, auth.IsAdmin(r))
	})

	t.Run("мусор вместо токена", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.AddCookie(&http.Cookie{Name: CookieAdmin, Value: "abcdef"})
		assert.False(t, auth.IsAdmin(r))
	})
}
