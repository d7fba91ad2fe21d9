package dto

type LegalResponse struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	LanguageCode string `json:"language_code"`
	UpdatedAt    string `json:"updated_at"`
}

type LegalsURLResponse struct {
	URL        string  `json:"url"`
	TermsURL   *string `json:"terms_url"`
	PrivacyURL *string `json:"privacy_url"`
	CookiesURL *string `json:"cookies_url"`
}

type LegalsEnvelope struct {
	Legals []LegalResponse `json:"legals"`
}
