package service

import (
	"context"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
	"github.com/planeta-guru/storefront-service/internal/mapper"
	pkgdto "github.com/planeta-guru/storefront-service/pkg/dto"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type PackServiceImpl struct {
	client *httpclient.Client
}

func CreatePackService(client *httpclient.Client) PackService {
	return &PackServiceImpl{client: client}
}

func (s *PackServiceImpl) GetPacks(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.GuruPackPage, error) {
	result, err := httpclient.GetPaginated[dto.GuruPackResponse](ctx, s.client, "/packs", "guru_packs", httpclient.RequestOptions{
		Params:  pkgdto.MergeParams(filter.PaginationParams(), filter.SortParams()),
		Context: &rctx,
	})
	if err != nil {
		return domain.GuruPackPage{}, err
	}

	page := domain.GuruPackPage{
		Packs:      make([]domain.GuruPack, 0, len(result.Data)),
		Pagination: mapper.MapPagination(result.Pagination),
	}
	for _, pack := range result.Data {
		page.Packs = append(page.Packs, mapper.MapGuruPack(pack))
	}

	return page, nil
}
