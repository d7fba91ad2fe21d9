package domain

type Media struct {
	ID          int64  `json:"id"`
	MediaTypeID int    `json:"mediaTypeId"`
	URL         string `json:"url"`
	Order       int    `json:"order"`
}

type CategoryLanguage struct {
	ID           int64  `json:"id"`
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

type CategoryMedia struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Category references its parent by id; the tree is not embedded.
type Category struct {
	ID        int64              `json:"id"`
	Languages []CategoryLanguage `json:"languages"`
	Media     *CategoryMedia     `json:"media,omitempty"`
	ParentID  *int64             `json:"parentId,omitempty"`
}

type Spec struct {
	ID         int64  `json:"id"`
	SpecTypeID int    `json:"specTypeId"`
	Value      string `json:"value"`
}

type Description struct {
	ID                int64  `json:"id"`
	DescriptionTypeID int    `json:"descriptionTypeId"`
	Title             string `json:"title"`
	Body              string `json:"body"`
	LanguageCode      string `json:"languageCode"`
}

type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Discount struct {
	ID         int64   `json:"id"`
	Percentage float64 `json:"percentage"`
	StartsAt   string  `json:"startsAt"`
	EndsAt     string  `json:"endsAt"`
}

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Store struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CountryAvailability reports whether a bundle may be purchased from the
// caller's resolved country.
type CountryAvailability struct {
	Available bool   `json:"available"`
	Country   string `json:"country"`
}

// Bundle is the purchasable unit of a product. Price is in Gurus; local
// price and currency are present only when the upstream quotes fiat.
type Bundle struct {
	ID                           int64               `json:"id"`
	ProductID                    int64               `json:"productId"`
	Name                         string              `json:"name"`
	Price                        float64             `json:"price"`
	LocalPrice                   *float64            `json:"localPrice,omitempty"`
	LocalCurrency                *string             `json:"localCurrency,omitempty"`
	Discount                     *Discount           `json:"discount,omitempty"`
	Region                       *Region             `json:"region,omitempty"`
	Store                        *Store              `json:"store,omitempty"`
	ExternalProvider             *string             `json:"externalProvider,omitempty"`
	ExternalID                   *string             `json:"externalId,omitempty"`
	AvailableIntoSelectedCountry CountryAvailability `json:"availableIntoSelectedCountry"`
}

// Product always carries non-nil media, categories, specs, descriptions and
// bundles slices after mapping, even when the upstream omits them.
type Product struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	ProductTypeID int           `json:"productTypeId"`
	Owned         bool          `json:"owned"`
	Favorite      bool          `json:"favorite"`
	FavoriteID    *int64        `json:"favoriteId,omitempty"`
	Rating        float64       `json:"rating"`
	Media         []Media       `json:"media"`
	Categories    []Category    `json:"categories"`
	Specs         []Spec        `json:"specs"`
	Descriptions  []Description `json:"descriptions"`
	ProductType   *ProductType  `json:"productType,omitempty"`
	Bundles       []Bundle      `json:"bundles"`
}

type FeaturedProduct struct {
	ID      int64   `json:"id"`
	Order   int     `json:"order"`
	Product Product `json:"product"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
