package identity

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/planeta-guru/storefront-service/pkg/errs"
)

const SessionCookieName = "session"

// Provider is the contract over the hosted identity session: who the caller
// is, and a bearer token for upstream calls made on their behalf.
type Provider interface {
	CurrentUserID(r *http.Request) (int64, error)
	BearerToken(r *http.Request) (string, error)
}

type JWTProvider struct {
	secret string
}

func CreateJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: secret}
}

func (p *JWTProvider) CurrentUserID(r *http.Request) (int64, error) {
	claims, err := p.parseSession(r)
	if err != nil {
		return 0, err
	}

	userID, ok := claims["userID"].(float64)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	return int64(userID), nil
}

func (p *JWTProvider) BearerToken(r *http.Request) (string, error) {
	claims, err := p.parseSession(r)
	if err != nil {
		return "", err
	}

	token, ok := claims["accessToken"].(string)
	if !ok || token == "" {
		return "", errs.ErrNotLoggedIn
	}

	return token, nil
}

func (p *JWTProvider) parseSession(r *http.Request) (jwt.MapClaims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, errs.ErrNotLoggedIn
	}

	parsed, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(p.secret), nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errs.ErrExpiredToken
		}
		return nil, errs.ErrNotLoggedIn
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errs.ErrNotLoggedIn
	}

	return claims, nil
}

// CreateSessionToken mints a session cookie value. Used at login time by the
// identity callback handler and by tests.
func CreateSessionToken(userID int64, accessToken string, jwtSecretKey string, jwtKid string) (string, error) {
	claims := jwt.MapClaims{}
	claims["userID"] = userID
	claims["accessToken"] = accessToken
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if jwtKid != "" {
		token.Header["kid"] = jwtKid
	}

	return token.SignedString([]byte(jwtSecretKey))
}
