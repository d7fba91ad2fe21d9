package service

import (
	"context"
	"fmt"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
	"github.com/planeta-guru/storefront-service/internal/mapper"
	pkgdto "github.com/planeta-guru/storefront-service/pkg/dto"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type ProductServiceImpl struct {
	client *httpclient.Client
}

func CreateProductService(client *httpclient.Client) ProductService {
	return &ProductServiceImpl{client: client}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	params := pkgdto.MergeParams(filter.PaginationParams(), filter.SortParams())
	if filter.Search != "" {
		params["q"] = filter.Search
	}
	if filter.CategoryID > 0 {
		params["category_id"] = filter.CategoryID
	}

	return s.fetchProductPage(ctx, "/products", params, rctx)
}

func (s *ProductServiceImpl) GetProductBySlug(ctx context.Context, slug string, rctx httpclient.RequestContext) (domain.Product, error) {
	var envelope dto.ProductEnvelope
	err := s.client.Get(ctx, fmt.Sprintf("/products/%s", slug), &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		return domain.Product{}, err
	}

	return mapper.MapProduct(envelope.Product, rctx.SelectedCountry), nil
}

// GetProductsByCategory and SearchProducts are named call sites over the
// generic products endpoint, not independent logic.
func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, categoryID int64, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	filter.CategoryID = categoryID
	return s.GetProducts(ctx, filter, rctx)
}

func (s *ProductServiceImpl) SearchProducts(ctx context.Context, query string, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	filter.Search = query
	return s.GetProducts(ctx, filter, rctx)
}

func (s *ProductServiceImpl) GetFeaturedProducts(ctx context.Context, rctx httpclient.RequestContext) ([]domain.FeaturedProduct, error) {
	var envelope dto.FeaturedEnvelope
	err := s.client.Get(ctx, "/products/featured", &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		return nil, err
	}

	featured := make([]domain.FeaturedProduct, 0, len(envelope.Featured))
	for _, entry := range envelope.Featured {
		featured = append(featured, mapper.MapFeaturedProduct(entry, rctx.SelectedCountry))
	}

	return featured, nil
}

func (s *ProductServiceImpl) GetUserProducts(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	params := pkgdto.MergeParams(filter.PaginationParams(), filter.SortParams())
	return s.fetchProductPage(ctx, "/users/me/products", params, rctx)
}

// GetDownloads is the user's library ordered by most recent acquisition.
func (s *ProductServiceImpl) GetDownloads(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	filter.OrderBy = "acquired_at"
	filter.Order = "desc"
	return s.GetUserProducts(ctx, filter, rctx)
}

func (s *ProductServiceImpl) GetFavorites(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.FavoritePage, error) {
	result, err := httpclient.GetPaginated[dto.FavoriteResponse](ctx, s.client, "/users/me/favorites", "favorites", httpclient.RequestOptions{
		Params:  filter.PaginationParams(),
		Context: &rctx,
	})
	if err != nil {
		return domain.FavoritePage{}, err
	}

	page := domain.FavoritePage{
		Favorites:  make([]domain.Favorite, 0, len(result.Data)),
		Pagination: mapper.MapPagination(result.Pagination),
	}
	for _, favorite := range result.Data {
		page.Favorites = append(page.Favorites, mapper.MapFavorite(favorite, rctx.SelectedCountry))
	}

	return page, nil
}

func (s *ProductServiceImpl) AddFavorite(ctx context.Context, productID int64, rctx httpclient.RequestContext) (domain.AddedFavorite, error) {
	var envelope dto.AddedFavoriteEnvelope
	err := s.client.Post(ctx, "/users/me/favorites", dto.AddFavoriteRequest{ProductID: productID}, &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		return domain.AddedFavorite{}, err
	}

	return mapper.MapAddedFavorite(envelope.Favorite), nil
}

func (s *ProductServiceImpl) RemoveFavorite(ctx context.Context, favoriteID int64, rctx httpclient.RequestContext) error {
	return s.client.Delete(ctx, fmt.Sprintf("/users/me/favorites/%d", favoriteID), httpclient.RequestOptions{Context: &rctx})
}

func (s *ProductServiceImpl) fetchProductPage(ctx context.Context, endpoint string, params map[string]interface{}, rctx httpclient.RequestContext) (domain.ProductPage, error) {
	result, err := httpclient.GetPaginated[dto.ProductResponse](ctx, s.client, endpoint, "products", httpclient.RequestOptions{
		Params:  params,
		Context: &rctx,
	})
	if err != nil {
		return domain.ProductPage{}, err
	}

	page := domain.ProductPage{
		Products:   make([]domain.Product, 0, len(result.Data)),
		Pagination: mapper.MapPagination(result.Pagination),
	}
	for _, product := range result.Data {
		page.Products = append(page.Products, mapper.MapProduct(product, rctx.SelectedCountry))
	}

	return page, nil
}
