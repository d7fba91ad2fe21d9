package dto

// Wire models for the upstream catalog endpoints. Field names follow the
// upstream snake_case contract; mapping to domain shapes happens in
// internal/mapper.

type MediaResponse struct {
	ID          int64  `json:"id"`
	MediaTypeID int    `json:"media_type_id"`
	URL         string `json:"url"`
	Order       int    `json:"order"`
}

type CategoryLanguageResponse struct {
	ID           int64  `json:"id"`
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
}

type CategoryMediaResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type CategoryResponse struct {
	ID        int64                      `json:"id"`
	Languages []CategoryLanguageResponse `json:"languages"`
	Media     *CategoryMediaResponse     `json:"media"`
	ParentID  *int64                     `json:"parent_id"`
}

type SpecResponse struct {
	ID         int64  `json:"id"`
	SpecTypeID int    `json:"spec_type_id"`
	Value      string `json:"value"`
}

type DescriptionResponse struct {
	ID                int64  `json:"id"`
	DescriptionTypeID int    `json:"description_type_id"`
	Title             string `json:"title"`
	Body              string `json:"body"`
	LanguageCode      string `json:"language_code"`
}

type ProductTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DiscountResponse struct {
	ID         int64   `json:"id"`
	Percentage float64 `json:"percentage"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
}

type RegionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type StoreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BundleResponse struct {
	ID               int64             `json:"id"`
	ProductID        int64             `json:"product_id"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	LocalPrice       *float64          `json:"local_price"`
	LocalCurrency    *string           `json:"local_currency"`
	Discount         *DiscountResponse `json:"discount"`
	Region           *RegionResponse   `json:"region"`
	Store            *StoreResponse    `json:"store"`
	ExternalProvider *string           `json:"external_provider"`
	ExternalID       *string           `json:"external_id"`
	Countries        []string          `json:"countries"`
}

type ProductResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	ProductTypeID int                   `json:"product_type_id"`
	Owned         bool                  `json:"owned"`
	Favorite      bool                  `json:"favorite"`
	FavoriteID    *int64                `json:"favorite_id"`
	Rating        float64               `json:"rating"`
	Media         []MediaResponse       `json:"media"`
	Categories    []CategoryResponse    `json:"categories"`
	Specs         []SpecResponse        `json:"specs"`
	Descriptions  []DescriptionResponse `json:"descriptions"`
	ProductType   *ProductTypeResponse  `json:"product_type"`
	Bundles       []BundleResponse      `json:"bundles"`
}

// FeaturedProductResponse covers both upstream shapes of a featured entry:
// the nested shape keeps media and descriptions inside the product object,
// the flattened shape lifts them to the top level next to it.
type FeaturedProductResponse struct {
	ID           int64                 `json:"id"`
	Order        int                   `json:"order"`
	Product      ProductResponse       `json:"product"`
	Media        []MediaResponse       `json:"media"`
	Descriptions []DescriptionResponse `json:"descriptions"`
}

type ProductEnvelope struct {
	Product ProductResponse `json:"product"`
}

type FeaturedEnvelope struct {
	Featured []FeaturedProductResponse `json:"featured"`
}
