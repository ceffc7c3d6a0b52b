package models

// ConfirmationPayload is the asynq task payload enqueued when a booking
// session is confirmed.
type ConfirmationPayload struct {
	SessionID    string `json:"sessionId"`
	CompanyID    string `json:"companyId"`
	ContactID    string `json:"contactId"`
	ContactEmail string `json:"contactEmail,omitempty"`
	StartTime    string `json:"startTime"`
}

// TokenPair is the credential pair minted by the identity service.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // seconds until the access token expires
}
