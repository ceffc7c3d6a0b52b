package models

// Company is owned by the identity service.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Employee is a company staff member as managed through the admin surface.
// Profiles (models.Profile) are the public, bookable projection of these.
type Employee struct {
	ID         string `json:"id"`
	CompanyID  string `json:"companyId"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`
	Bookable   bool   `json:"bookable"`
}
