package service

import (
	"context"

	"github.com/planeta-guru/storefront-service/internal/domain"
	pkgdto "github.com/planeta-guru/storefront-service/pkg/dto"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error)
	GetProductBySlug(ctx context.Context, slug string, rctx httpclient.RequestContext) (domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error)
	SearchProducts(ctx context.Context, query string, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error)
	GetFeaturedProducts(ctx context.Context, rctx httpclient.RequestContext) ([]domain.FeaturedProduct, error)
	GetUserProducts(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error)
	GetDownloads(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error)
	GetFavorites(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.FavoritePage, error)
	AddFavorite(ctx context.Context, productID int64, rctx httpclient.RequestContext) (domain.AddedFavorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64, rctx httpclient.RequestContext) error
}

type WalletService interface {
	GetWallet(ctx context.Context, rctx httpclient.RequestContext) (domain.Wallet, error)
	GetOutcomes(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.WalletOutcomePage, error)
	GetIncomes(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.WalletIncomePage, error)
}

type PackService interface {
	GetPacks(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.GuruPackPage, error)
}

type LegalService interface {
	GetLegals(ctx context.Context, rctx httpclient.RequestContext) ([]domain.Legal, error)
	GetLegalsURL(ctx context.Context, country string, rctx httpclient.RequestContext) (domain.LegalsURL, error)
}

// SubscriptionService never fails: status is best-effort enrichment, so any
// upstream error collapses to the inactive sentinel.
type SubscriptionService interface {
	GetStatus(ctx context.Context, rctx httpclient.RequestContext) domain.Subscription
}
