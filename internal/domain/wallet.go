package domain

// Wallet balances and ledger amounts are plain Guru units, never
// currency-formatted strings.
type Wallet struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Balance   float64 `json:"balance"`
	UpdatedAt string  `json:"updatedAt"`
}

type WalletOutcome struct {
	ID          int64   `json:"id"`
	WalletID    int64   `json:"walletId"`
	VoucherID   *int64  `json:"voucherId"`
	ProductID   *int64  `json:"productId"`
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"createdAt"`
}

type WalletIncome struct {
	ID         int64   `json:"id"`
	WalletID   int64   `json:"walletId"`
	GuruPackID *int64  `json:"guruPackId"`
	Source     string  `json:"source"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
}

type WalletOutcomePage struct {
	Outcomes   []WalletOutcome `json:"outcomes"`
	Pagination Pagination      `json:"pagination"`
}

type WalletIncomePage struct {
	Incomes    []WalletIncome `json:"incomes"`
	Pagination Pagination     `json:"pagination"`
}
