package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

func MapFavorite(in dto.FavoriteResponse, selectedCountry string) domain.Favorite {
	out := domain.Favorite{
		ID:        in.ID,
		UserID:    in.UserID,
		ProductID: in.ProductID,
	}
	if in.Product != nil {
		product := MapProduct(*in.Product, selectedCountry)
		out.Product = &product
	}
	return out
}

func MapAddedFavorite(in dto.AddedFavoriteResponse) domain.AddedFavorite {
	return domain.AddedFavorite{
		ID:        in.ID,
		ProductID: in.ProductID,
	}
}
