package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planeta-guru/storefront-service/pkg/errs"
)

const testSecret = "test-secret"

func requestWithSession(t *testing.T, userID int64, accessToken string) *http.Request {
	t.Helper()

	token, err := CreateSessionToken(userID, accessToken, testSecret, "kid-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return req
}

func TestSessionRoundTrip(t *testing.T) {
	provider := CreateJWTProvider(testSecret)
	req := requestWithSession(t, 42, "upstream-bearer")

	userID, err := provider.CurrentUserID(req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	bearer, err := provider.BearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-bearer", bearer)
}

func TestMissingSessionCookie(t *testing.T) {
	provider := CreateJWTProvider(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := provider.CurrentUserID(req)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestWrongSigningSecretIsRejected(t *testing.T) {
	provider := CreateJWTProvider("a-different-secret")
	req := requestWithSession(t, 42, "upstream-bearer")

	_, err := provider.BearerToken(req)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestGarbageCookieIsRejected(t *testing.T) {
	provider := CreateJWTProvider(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})

	_, err := provider.CurrentUserID(req)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
