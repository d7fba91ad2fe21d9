package controller

import (
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/reqcontext"
	"github.com/planeta-guru/storefront-service/internal/service"
	pkgdto "github.com/planeta-guru/storefront-service/pkg/dto"
	"github.com/planeta-guru/storefront-service/pkg/errs"
	"github.com/planeta-guru/storefront-service/pkg/response"
)

type Services struct {
	Products      service.ProductService
	Wallet        service.WalletService
	Packs         service.PackService
	Legals        service.LegalService
	Subscriptions service.SubscriptionService
}

type Controller struct {
	services Services
	resolver *reqcontext.Resolver
}

func CreateStorefrontController(g *echo.Group, services Services, resolver *reqcontext.Resolver, authGuard echo.MiddlewareFunc) {
	c := Controller{
		services: services,
		resolver: resolver,
	}

	g.GET("/home", c.GetHome)
	g.GET("/products", c.GetProducts)
	g.GET("/products/featured", c.GetFeaturedProducts)
	g.GET("/products/:slug", c.GetProductBySlug)
	g.GET("/categories/:id/products", c.GetProductsByCategory)
	g.GET("/packs", c.GetPacks)
	g.GET("/legals", c.GetLegals)
	g.GET("/legals/url", c.GetLegalsURL)

	me := g.Group("/users/me", authGuard)
	me.GET("/products", c.GetUserProducts)
	me.GET("/downloads", c.GetDownloads)
	me.GET("/favorites", c.GetFavorites)
	me.POST("/favorites", c.AddFavorite)
	me.DELETE("/favorites/:id", c.RemoveFavorite)
	me.GET("/subscription", c.GetSubscriptionStatus)

	wallet := g.Group("/wallet", authGuard)
	wallet.GET("", c.GetWallet)
	wallet.GET("/outcomes", c.GetWalletOutcomes)
	wallet.GET("/incomes", c.GetWalletIncomes)
}

// GetHome fans out the independent featured and packs fetches and awaits
// them jointly instead of sequentially.
func (c *Controller) GetHome(e echo.Context) error {
	rctx := c.resolver.ResolvePublic(e)
	ctx := e.Request().Context()

	var (
		wg          sync.WaitGroup
		featured    []domain.FeaturedProduct
		packs       domain.GuruPackPage
		featuredErr error
		packsErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		featured, featuredErr = c.services.Products.GetFeaturedProducts(ctx, rctx)
	}()
	go func() {
		defer wg.Done()
		packs, packsErr = c.services.Packs.GetPacks(ctx, pkgdto.Filter{}, rctx)
	}()
	wg.Wait()

	if featuredErr != nil {
		return response.WriteErrorResponse(e, featuredErr, nil)
	}
	if packsErr != nil {
		return response.WriteErrorResponse(e, packsErr, nil)
	}

	return response.WriteSuccessResponse(e, "", map[string]interface{}{
		"featured": featured,
		"packs":    packs,
	})
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	rctx := c.resolver.ResolvePublic(e)
	page, err := c.services.Products.GetProducts(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetFeaturedProducts(e echo.Context) error {
	rctx := c.resolver.ResolvePublic(e)
	featured, err := c.services.Products.GetFeaturedProducts(e.Request().Context(), rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", featured)
}

func (c *Controller) GetProductBySlug(e echo.Context) error {
	rctx := c.resolver.ResolvePublic(e)
	product, err := c.services.Products.GetProductBySlug(e.Request().Context(), e.Param("slug"), rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}

func (c *Controller) GetProductsByCategory(e echo.Context) error {
	categoryID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
	}

	rctx := c.resolver.ResolvePublic(e)
	page, err := c.services.Products.GetProductsByCategory(e.Request().Context(), categoryID, filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetPacks(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetPacks").Msg("")
	}

	rctx := c.resolver.ResolvePublic(e)
	page, err := c.services.Packs.GetPacks(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetLegals(e echo.Context) error {
	rctx := c.resolver.ResolvePublic(e)
	legals, err := c.services.Legals.GetLegals(e.Request().Context(), rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", legals)
}

func (c *Controller) GetLegalsURL(e echo.Context) error {
	rctx := c.resolver.ResolvePublic(e)
	urls, err := c.services.Legals.GetLegalsURL(e.Request().Context(), e.QueryParam("country"), rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", urls)
}

func (c *Controller) GetUserProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetUserProducts").Msg("")
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.services.Products.GetUserProducts(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetDownloads(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetDownloads").Msg("")
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.services.Products.GetDownloads(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetFavorites(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetFavorites").Msg("")
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.services.Products.GetFavorites(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

// AddFavorite and RemoveFavorite report through the {success, error}
// envelope rather than an error response.
func (c *Controller) AddFavorite(e echo.Context) error {
	payload := struct {
		ProductID int64 `json:"productId"`
	}{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddFavorite").Msg("")
		return response.WriteResultResponse(e, errs.ErrClient)
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	_, err = c.services.Products.AddFavorite(e.Request().Context(), payload.ProductID, rctx)
	return response.WriteResultResponse(e, err)
}

func (c *Controller) RemoveFavorite(e echo.Context) error {
	favoriteID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteResultResponse(e, errs.ErrClient)
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.services.Products.RemoveFavorite(e.Request().Context(), favoriteID, rctx)
	return response.WriteResultResponse(e, err)
}

func (c *Controller) GetSubscriptionStatus(e echo.Context) error {
	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	subscription := c.services.Subscriptions.GetStatus(e.Request().Context(), rctx)
	return response.WriteSuccessResponse(e, "", subscription)
}

func (c *Controller) GetWallet(e echo.Context) error {
	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	wallet, err := c.services.Wallet.GetWallet(e.Request().Context(), rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", wallet)
}

func (c *Controller) GetWalletOutcomes(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetWalletOutcomes").Msg("")
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.services.Wallet.GetOutcomes(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}

func (c *Controller) GetWalletIncomes(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetWalletIncomes").Msg("")
	}

	rctx, err := c.resolver.Resolve(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.services.Wallet.GetIncomes(e.Request().Context(), filter, rctx)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", page)
}
