package service

import (
	"context"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
	"github.com/planeta-guru/storefront-service/internal/mapper"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type LegalServiceImpl struct {
	client *httpclient.Client
}

func CreateLegalService(client *httpclient.Client) LegalService {
	return &LegalServiceImpl{client: client}
}

func (s *LegalServiceImpl) GetLegals(ctx context.Context, rctx httpclient.RequestContext) ([]domain.Legal, error) {
	var envelope dto.LegalsEnvelope
	err := s.client.Get(ctx, "/legals", &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		return nil, err
	}

	legals := make([]domain.Legal, 0, len(envelope.Legals))
	for _, legal := range envelope.Legals {
		legals = append(legals, mapper.MapLegal(legal))
	}

	return legals, nil
}

func (s *LegalServiceImpl) GetLegalsURL(ctx context.Context, country string, rctx httpclient.RequestContext) (domain.LegalsURL, error) {
	params := map[string]interface{}{}
	if country != "" {
		params["country"] = country
	}

	var urls dto.LegalsURLResponse
	err := s.client.Get(ctx, "/legals/url", &urls, httpclient.RequestOptions{Params: params, Context: &rctx})
	if err != nil {
		return domain.LegalsURL{}, err
	}

	return mapper.MapLegalsURL(urls), nil
}
