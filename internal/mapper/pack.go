package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

func MapGuruPack(in dto.GuruPackResponse) domain.GuruPack {
	return domain.GuruPack{
		ID:            in.ID,
		Name:          in.Name,
		Amount:        in.Amount,
		Bonus:         in.Bonus,
		Price:         in.Price,
		LocalPrice:    in.LocalPrice,
		LocalCurrency: in.LocalCurrency,
		Media:         MapMediaList(in.Media),
	}
}
