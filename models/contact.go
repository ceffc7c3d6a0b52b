package models

// Contact is owned by the identity service. Fetched or created by id,
// never cached beyond the current request.
type Contact struct {
	ID           string `json:"id"`
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}
