package service

import (
	"context"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
	"github.com/planeta-guru/storefront-service/internal/mapper"
	pkgdto "github.com/planeta-guru/storefront-service/pkg/dto"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type WalletServiceImpl struct {
	client *httpclient.Client
}

func CreateWalletService(client *httpclient.Client) WalletService {
	return &WalletServiceImpl{client: client}
}

func (s *WalletServiceImpl) GetWallet(ctx context.Context, rctx httpclient.RequestContext) (domain.Wallet, error) {
	var envelope dto.WalletEnvelope
	err := s.client.Get(ctx, "/wallet", &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		return domain.Wallet{}, err
	}

	return mapper.MapWallet(envelope.Wallet), nil
}

func (s *WalletServiceImpl) GetOutcomes(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.WalletOutcomePage, error) {
	result, err := httpclient.GetPaginated[dto.WalletOutcomeResponse](ctx, s.client, "/wallet/outcomes", "outcomes", httpclient.RequestOptions{
		Params:  pkgdto.MergeParams(filter.PaginationParams(), filter.SortParams()),
		Context: &rctx,
	})
	if err != nil {
		return domain.WalletOutcomePage{}, err
	}

	page := domain.WalletOutcomePage{
		Outcomes:   make([]domain.WalletOutcome, 0, len(result.Data)),
		Pagination: mapper.MapPagination(result.Pagination),
	}
	for _, outcome := range result.Data {
		page.Outcomes = append(page.Outcomes, mapper.MapOutcome(outcome))
	}

	return page, nil
}

func (s *WalletServiceImpl) GetIncomes(ctx context.Context, filter pkgdto.Filter, rctx httpclient.RequestContext) (domain.WalletIncomePage, error) {
	result, err := httpclient.GetPaginated[dto.WalletIncomeResponse](ctx, s.client, "/wallet/incomes", "incomes", httpclient.RequestOptions{
		Params:  pkgdto.MergeParams(filter.PaginationParams(), filter.SortParams()),
		Context: &rctx,
	})
	if err != nil {
		return domain.WalletIncomePage{}, err
	}

	page := domain.WalletIncomePage{
		Incomes:    make([]domain.WalletIncome, 0, len(result.Data)),
		Pagination: mapper.MapPagination(result.Pagination),
	}
	for _, income := range result.Data {
		page.Incomes = append(page.Incomes, mapper.MapIncome(income))
	}

	return page, nil
}
