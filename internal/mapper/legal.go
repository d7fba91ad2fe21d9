package mapper

import (
	"github.com/planeta-guru/storefront-service/internal/domain"
	"github.com/planeta-guru/storefront-service/internal/dto"
)

// MapLegal coerces any type outside the known set to "other" instead of
// propagating an unknown tag.
func MapLegal(in dto.LegalResponse) domain.Legal {
	legalType := domain.LegalType(in.Type)
	switch legalType {
	case domain.LegalTypeTerms, domain.LegalTypePrivacy, domain.LegalTypeCookies, domain.LegalTypeOther:
	default:
		legalType = domain.LegalTypeOther
	}

	return domain.Legal{
		ID:           in.ID,
		Type:         legalType,
		Title:        in.Title,
		Body:         in.Body,
		LanguageCode: in.LanguageCode,
		UpdatedAt:    in.UpdatedAt,
	}
}

func MapLegalsURL(in dto.LegalsURLResponse) domain.LegalsURL {
	out := domain.LegalsURL{
		TermsURL:   in.URL,
		PrivacyURL: in.PrivacyURL,
		CookiesURL: in.CookiesURL,
	}
	if in.TermsURL != nil {
		out.TermsURL = *in.TermsURL
	}
	return out
}
