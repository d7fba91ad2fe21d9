package domain

type Subscription struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Valid     bool   `json:"valid"`
	Carrier   string `json:"carrier"`
	StartedAt string `json:"startedAt"`
	ExpiresAt string `json:"expiresAt"`
}

// InactiveSubscription is the sentinel returned when subscription status
// cannot be fetched; status is best-effort enrichment, never a hard failure.
func InactiveSubscription() Subscription {
	return Subscription{
		Status: SubscriptionStatusInactive,
		Valid:  false,
	}
}
