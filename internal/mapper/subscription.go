package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

func MapSubscription(in dto.SubscriptionResponse) domain.Subscription {
	return domain.Subscription{
		ID:        in.ID,
		Status:    in.Status,
		Valid:     in.Valid,
		Carrier:   in.Carrier,
		StartedAt: in.StartedAt,
		ExpiresAt: in.ExpiresAt,
	}
}
