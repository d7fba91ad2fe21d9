package domain

// GuruPack is a purchasable top-up of the virtual currency wallet.
type GuruPack struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Bonus         float64  `json:"bonus"`
	Price         float64  `json:"price"`
	LocalPrice    *float64 `json:"localPrice,omitempty"`
	LocalCurrency *string  `json:"localCurrency,omitempty"`
	Media         []Media  `json:"media"`
}

type GuruPackPage struct {
	Packs      []GuruPack `json:"packs"`
	Pagination Pagination `json:"pagination"`
}
