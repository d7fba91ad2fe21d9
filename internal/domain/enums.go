package domain

// Type ids below mirror the upstream catalog's numeric conventions. They are
// external configuration, not derivable from the payloads themselves, and
// must be re-confirmed against the upstream contract before being extended.

const (
	MediaTypeImage  = 1
	MediaTypeBanner = 2
	MediaTypeVideo  = 3
)

const (
	DescriptionTypeGeneral = 1
	DescriptionTypeBullets = 5
)

const (
	SpecTypeSystem            = 5
	SpecTypeInterfaceLanguage = 16
	SpecTypePlatform          = 21
	SpecTypeSystemExtended    = 29
)

type LegalType string

const (
	LegalTypeTerms   LegalType = "terms"
	LegalTypePrivacy LegalType = "privacy"
	LegalTypeCookies LegalType = "cookies"
	LegalTypeOther   LegalType = "other"
)

const (
	SubscriptionStatusActive   = "ACTIVE"
	SubscriptionStatusInactive = "INACTIVE"
)
