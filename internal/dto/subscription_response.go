package dto

type SubscriptionResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Valid     bool   `json:"valid"`
	Carrier   string `json:"carrier"`
	StartedAt string `json:"started_at"`
	ExpiresAt string `json:"expires_at"`
}

type SubscriptionEnvelope struct {
	Subscription SubscriptionResponse `json:"subscription"`
}
