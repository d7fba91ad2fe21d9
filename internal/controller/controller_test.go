package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/suite"

	"github.com/planeta-guru/storefront-service/internal/identity"
	localmiddleware "github.com/planeta-guru/storefront-service/internal/middleware"
	"github.com/planeta-guru/storefront-service/internal/reqcontext"
	"github.com/planeta-guru/storefront-service/internal/service"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

const testJWTSecret = "controller-test-secret"

// upstreamStub routes fake upstream responses by path.
type upstreamStub struct {
	responses map[string]string
	statuses  map[string]int
}

func (u *upstreamStub) handler(w http.ResponseWriter, r *http.Request) {
	if status, ok := u.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
	}
	if body, ok := u.responses[r.URL.Path]; ok {
		w.Write([]byte(body))
		return
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"message": "Resource not found"}`))
}

type ControllerTestSuite struct {
	suite.Suite

	upstream       *upstreamStub
	upstreamServer *httptest.Server
	gateway        *httptest.Server
}

func (s *ControllerTestSuite) SetupTest() {
	s.upstream = &upstreamStub{
		responses: map[string]string{},
		statuses:  map[string]int{},
	}
	s.upstreamServer = httptest.NewServer(http.HandlerFunc(s.upstream.handler))

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{Name: "test", IsSuccessful: httpclient.IsSuccessful})
	client, err := httpclient.CreateClient(s.upstreamServer.URL, "test-key", 2000, breaker)
	s.Require().NoError(err)

	provider := identity.CreateJWTProvider(testJWTSecret)
	resolver := reqcontext.CreateResolver(provider)

	services := Services{
		Products:      service.CreateProductService(client),
		Wallet:        service.CreateWalletService(client),
		Packs:         service.CreatePackService(client),
		Legals:        service.CreateLegalService(client),
		Subscriptions: service.CreateSubscriptionService(client),
	}

	e := echo.New()
	g := e.Group("/api/v1")
	CreateStorefrontController(g, services, resolver, localmiddleware.Authenticated(provider))

	s.gateway = httptest.NewServer(e)
}

func (s *ControllerTestSuite) TearDownTest() {
	s.gateway.Close()
	s.upstreamServer.Close()
}

func (s *ControllerTestSuite) request(method string, path string, cookies ...*http.Cookie) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(method, s.gateway.URL+path, nil)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var body map[string]interface{}
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &body))
	}

	return resp, body
}

func (s *ControllerTestSuite) sessionCookie(userID int64) *http.Cookie {
	token, err := identity.CreateSessionToken(userID, "upstream-bearer", testJWTSecret, "kid-1")
	s.Require().NoError(err)
	return &http.Cookie{Name: identity.SessionCookieName, Value: token}
}

func (s *ControllerTestSuite) TestGetProductsPublic() {
	s.upstream.responses["/products"] = `{
		"products": [{"id": 1, "name": "Game One", "slug": "game-one"}],
		"pagination": {"total": 1, "current_page": 1, "last_page": 1}
	}`

	resp, body := s.request(http.MethodGet, "/api/v1/products")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("success", body["status"])

	data := body["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	s.Require().Len(products, 1)
	s.Equal("game-one", products[0].(map[string]interface{})["slug"])
}

func (s *ControllerTestSuite) TestWalletRequiresSession() {
	resp, body := s.request(http.MethodGet, "/api/v1/wallet")

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("error", body["status"])
}

func (s *ControllerTestSuite) TestWalletWithSession() {
	s.upstream.responses["/wallet"] = `{"wallet": {"id": 4, "user_id": 9, "balance": 350.5}}`

	resp, body := s.request(http.MethodGet, "/api/v1/wallet", s.sessionCookie(9))

	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	s.Equal(350.5, data["balance"])
}

func (s *ControllerTestSuite) TestUpstreamErrorStatusIsPreserved() {
	s.upstream.statuses["/products/missing-game"] = http.StatusNotFound
	s.upstream.responses["/products/missing-game"] = `{"message": "Product not found", "code": "NOT_FOUND"}`

	resp, body := s.request(http.MethodGet, "/api/v1/products/missing-game")

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Product not found", body["message"])
}

func (s *ControllerTestSuite) TestSubscriptionFallsBackToInactive() {
	s.upstream.statuses["/subscriptions/status"] = http.StatusBadGateway

	resp, body := s.request(http.MethodGet, "/api/v1/users/me/subscription", s.sessionCookie(9))

	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	s.Equal("INACTIVE", data["status"])
	s.Equal(false, data["valid"])
}

func (s *ControllerTestSuite) TestRemoveFavoriteResultEnvelope() {
	s.upstream.statuses["/users/me/favorites/77"] = http.StatusNoContent

	resp, body := s.request(http.MethodDelete, "/api/v1/users/me/favorites/77", s.sessionCookie(9))

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["success"])
}

func (s *ControllerTestSuite) TestRemoveFavoriteFailureStaysInEnvelope() {
	s.upstream.statuses["/users/me/favorites/78"] = http.StatusConflict
	s.upstream.responses["/users/me/favorites/78"] = `{"message": "Favorite not yours"}`

	resp, body := s.request(http.MethodDelete, "/api/v1/users/me/favorites/78", s.sessionCookie(9))

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(false, body["success"])
	s.Equal("Favorite not yours", body["error"])
}

func (s *ControllerTestSuite) TestHomeFansOutFeaturedAndPacks() {
	s.upstream.responses["/products/featured"] = `{
		"featured": [{"id": 1, "order": 1, "product": {"id": 10, "name": "Promo", "slug": "promo"}}]
	}`
	s.upstream.responses["/packs"] = `{
		"guru_packs": [{"id": 1, "name": "Starter", "amount": 500, "price": 4.99}],
		"pagination": {"total": 1}
	}`

	resp, body := s.request(http.MethodGet, "/api/v1/home")

	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	s.Require().Contains(data, "featured")
	s.Require().Contains(data, "packs")
}

func (s *ControllerTestSuite) TestSelectedCountryCookieReachesUpstream() {
	received := make(chan string, 1)
	s.upstreamServer.Close()
	s.upstreamServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Get("Selected-Country")
		w.Write([]byte(`{"products": [], "pagination": {}}`))
	}))

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{Name: "test", IsSuccessful: httpclient.IsSuccessful})
	client, err := httpclient.CreateClient(s.upstreamServer.URL, "test-key", 2000, breaker)
	s.Require().NoError(err)

	provider := identity.CreateJWTProvider(testJWTSecret)
	resolver := reqcontext.CreateResolver(provider)
	e := echo.New()
	CreateStorefrontController(e.Group("/api/v1"), Services{
		Products: service.CreateProductService(client),
	}, resolver, localmiddleware.Authenticated(provider))

	s.gateway.Close()
	s.gateway = httptest.NewServer(e)

	resp, _ := s.request(http.MethodGet, "/api/v1/products", &http.Cookie{Name: "selectedCountry", Value: "MX"})
	s.Equal(http.StatusOK, resp.StatusCode)

	select {
	case country := <-received:
		s.Equal("MX", country)
	default:
		s.Fail("upstream never saw the request")
	}
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}
