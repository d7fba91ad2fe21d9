package reqcontext

import (
	"github.com/labstack/echo/v4"

	"github.com/planeta-guru/storefront-service/internal/identity"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

const (
	publicContextKey = "reqcontext.public"
	authedContextKey = "reqcontext.authed"

	defaultCountry  = "AR"
	defaultLanguage = "es"
)

// Resolver derives the per-request context from cookies, and for protected
// calls exchanges the session for a bearer token. Results are memoized on
// the echo context: every consumer within one request observes the same
// snapshot and the session is read at most once.
type Resolver struct {
	identity identity.Provider
}

func CreateResolver(provider identity.Provider) *Resolver {
	return &Resolver{identity: provider}
}

// ResolvePublic resolves country, language and msisdn without touching the
// session. Used by public procedures to avoid needless session lookups.
func (r *Resolver) ResolvePublic(c echo.Context) httpclient.RequestContext {
	if cached, ok := c.Get(publicContextKey).(httpclient.RequestContext); ok {
		return cached
	}

	rctx := httpclient.RequestContext{
		SelectedCountry:  cookieValue(c, "selectedCountry", "selected_country", defaultCountry),
		SelectedLanguage: cookieValue(c, "selectedLanguage", "selected_language", defaultLanguage),
		Msisdn:           cookieValue(c, "msisdn", "", ""),
	}

	c.Set(publicContextKey, rctx)
	return rctx
}

// Resolve includes the bearer token for the current session.
func (r *Resolver) Resolve(c echo.Context) (httpclient.RequestContext, error) {
	if cached, ok := c.Get(authedContextKey).(httpclient.RequestContext); ok {
		return cached, nil
	}

	rctx := r.ResolvePublic(c)

	token, err := r.identity.BearerToken(c.Request())
	if err != nil {
		return httpclient.RequestContext{}, err
	}
	rctx.AuthToken = token

	c.Set(authedContextKey, rctx)
	return rctx, nil
}

func cookieValue(c echo.Context, name string, altName string, fallback string) string {
	if cookie, err := c.Cookie(name); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if altName != "" {
		if cookie, err := c.Cookie(altName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}
	return fallback
}
