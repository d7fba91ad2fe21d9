package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

func MapMedia(in dto.MediaResponse) domain.Media {
	return domain.Media{
		ID:          in.ID,
		MediaTypeID: in.MediaTypeID,
		URL:         in.URL,
		Order:       in.Order,
	}
}

func MapMediaList(in []dto.MediaResponse) []domain.Media {
	out := make([]domain.Media, 0, len(in))
	for _, media := range in {
		out = append(out, MapMedia(media))
	}
	return out
}

func MapCategory(in dto.CategoryResponse) domain.Category {
	out := domain.Category{
		ID:        in.ID,
		Languages: make([]domain.CategoryLanguage, 0, len(in.Languages)),
		ParentID:  in.ParentID,
	}
	for _, lang := range in.Languages {
		out.Languages = append(out.Languages, domain.CategoryLanguage{
			ID:           lang.ID,
			LanguageCode: lang.LanguageCode,
			Name:         lang.Name,
		})
	}
	if in.Media != nil {
		out.Media = &domain.CategoryMedia{ID: in.Media.ID, URL: in.Media.URL}
	}
	return out
}

func MapSpec(in dto.SpecResponse) domain.Spec {
	return domain.Spec{
		ID:         in.ID,
		SpecTypeID: in.SpecTypeID,
		Value:      in.Value,
	}
}

func MapDescription(in dto.DescriptionResponse) domain.Description {
	return domain.Description{
		ID:                in.ID,
		DescriptionTypeID: in.DescriptionTypeID,
		Title:             in.Title,
		Body:              in.Body,
		LanguageCode:      in.LanguageCode,
	}
}

func MapDiscount(in dto.DiscountResponse) domain.Discount {
	return domain.Discount{
		ID:         in.ID,
		Percentage: in.Percentage,
		StartsAt:   in.StartsAt,
		EndsAt:     in.EndsAt,
	}
}

// MapBundle computes country availability against the caller's resolved
// country: a bundle with no country list is purchasable everywhere.
func MapBundle(in dto.BundleResponse, selectedCountry string) domain.Bundle {
	out := domain.Bundle{
		ID:               in.ID,
		ProductID:        in.ProductID,
		Name:             in.Name,
		Price:            in.Price,
		LocalPrice:       in.LocalPrice,
		LocalCurrency:    in.LocalCurrency,
		ExternalProvider: in.ExternalProvider,
		ExternalID:       in.ExternalID,
		AvailableIntoSelectedCountry: domain.CountryAvailability{
			Available: bundleAvailableIn(in.Countries, selectedCountry),
			Country:   selectedCountry,
		},
	}
	if in.Discount != nil {
		discount := MapDiscount(*in.Discount)
		out.Discount = &discount
	}
	if in.Region != nil {
		out.Region = &domain.Region{ID: in.Region.ID, Name: in.Region.Name, Code: in.Region.Code}
	}
	if in.Store != nil {
		out.Store = &domain.Store{ID: in.Store.ID, Name: in.Store.Name}
	}
	return out
}

func bundleAvailableIn(countries []string, selectedCountry string) bool {
	if len(countries) == 0 {
		return true
	}
	for _, country := range countries {
		if country == selectedCountry {
			return true
		}
	}
	return false
}

func MapProduct(in dto.ProductResponse, selectedCountry string) domain.Product {
	out := domain.Product{
		ID:            in.ID,
		Name:          in.Name,
		Slug:          in.Slug,
		ProductTypeID: in.ProductTypeID,
		Owned:         in.Owned,
		Favorite:      in.Favorite,
		FavoriteID:    in.FavoriteID,
		Rating:        in.Rating,
		Media:         MapMediaList(in.Media),
		Categories:    make([]domain.Category, 0, len(in.Categories)),
		Specs:         make([]domain.Spec, 0, len(in.Specs)),
		Descriptions:  make([]domain.Description, 0, len(in.Descriptions)),
		Bundles:       make([]domain.Bundle, 0, len(in.Bundles)),
	}
	for _, category := range in.Categories {
		out.Categories = append(out.Categories, MapCategory(category))
	}
	for _, spec := range in.Specs {
		out.Specs = append(out.Specs, MapSpec(spec))
	}
	for _, description := range in.Descriptions {
		out.Descriptions = append(out.Descriptions, MapDescription(description))
	}
	for _, bundle := range in.Bundles {
		out.Bundles = append(out.Bundles, MapBundle(bundle, selectedCountry))
	}
	if in.ProductType != nil {
		out.ProductType = &domain.ProductType{ID: in.ProductType.ID, Name: in.ProductType.Name}
	}
	return out
}

// MapFeaturedProduct classifies the payload shape exactly once. The
// flattened variant carries media and descriptions at the top level while
// the nested product lacks them; reading from the wrong level would yield
// empty images silently, so the guard is mandatory.
func MapFeaturedProduct(in dto.FeaturedProductResponse, selectedCountry string) domain.FeaturedProduct {
	product := in.Product
	if isFlattenedFeatured(in) {
		product.Media = in.Media
		product.Descriptions = in.Descriptions
	}

	return domain.FeaturedProduct{
		ID:      in.ID,
		Order:   in.Order,
		Product: MapProduct(product, selectedCountry),
	}
}

func isFlattenedFeatured(in dto.FeaturedProductResponse) bool {
	return in.Media != nil && in.Product.Media == nil
}
