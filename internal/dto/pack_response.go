package dto

type GuruPackResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Amount        float64         `json:"amount"`
	Bonus         float64         `json:"bonus"`
	Price         float64         `json:"price"`
	LocalPrice    *float64        `json:"local_price"`
	LocalCurrency *string         `json:"local_currency"`
	Media         []MediaResponse `json:"media"`
}
