package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

func MapWallet(in dto.WalletResponse) domain.Wallet {
	return domain.Wallet{
		ID:        in.ID,
		UserID:    in.UserID,
		Balance:   in.Balance,
		UpdatedAt: in.UpdatedAt,
	}
}

func MapOutcome(in dto.WalletOutcomeResponse) domain.WalletOutcome {
	return domain.WalletOutcome{
		ID:          in.ID,
		WalletID:    in.WalletID,
		VoucherID:   in.VoucherID,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	}
}

func MapIncome(in dto.WalletIncomeResponse) domain.WalletIncome {
	return domain.WalletIncome{
		ID:         in.ID,
		WalletID:   in.WalletID,
		GuruPackID: in.GuruPackID,
		Source:     in.Source,
		Amount:     in.Amount,
		CreatedAt:  in.CreatedAt,
	}
}
