package dto

type WalletResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Balance   float64 `json:"balance"`
	UpdatedAt string  `json:"updated_at"`
}

type WalletOutcomeResponse struct {
	ID          int64   `json:"id"`
	WalletID    int64   `json:"wallet_id"`
	VoucherID   *int64  `json:"voucher_id"`
	ProductID   *int64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

type WalletIncomeResponse struct {
	ID         int64   `json:"id"`
	WalletID   int64   `json:"wallet_id"`
	GuruPackID *int64  `json:"guru_pack_id"`
	Source     string  `json:"source"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

type WalletEnvelope struct {
	Wallet WalletResponse `json:"wallet"`
}
