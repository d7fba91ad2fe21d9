package domain

type Legal struct {
	ID           int64     `json:"id"`
	Type         LegalType `json:"type"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	LanguageCode string    `json:"languageCode"`
	UpdatedAt    string    `json:"updatedAt"`
}

// LegalsURL points at the hosted legal documents. Terms falls back to the
// generic url when no dedicated one exists; privacy and cookies stay null.
type LegalsURL struct {
	TermsURL   string  `json:"termsUrl"`
	PrivacyURL *string `json:"privacyUrl"`
	CookiesURL *string `json:"cookiesUrl"`
}
