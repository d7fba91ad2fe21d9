package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
	"github.com/planeta-guru/storefront-service/internal/mapper"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type SubscriptionServiceImpl struct {
	client *httpclient.Client
}

func CreateSubscriptionService(client *httpclient.Client) SubscriptionService {
	return &SubscriptionServiceImpl{client: client}
}

// GetStatus swallows upstream failures and returns the inactive sentinel:
// callers treat subscription state as enrichment, not a hard dependency.
func (s *SubscriptionServiceImpl) GetStatus(ctx context.Context, rctx httpclient.RequestContext) domain.Subscription {
	var envelope dto.SubscriptionEnvelope
	err := s.client.Get(ctx, "/subscriptions/status", &envelope, httpclient.RequestOptions{Context: &rctx})
	if err != nil {
		log.Ctx(ctx).Info().Err(err).Str("component", "GetStatus").Msg("subscription status unavailable, falling back to inactive")
		return domain.InactiveSubscription()
	}

	return mapper.MapSubscription(envelope.Subscription)
}
