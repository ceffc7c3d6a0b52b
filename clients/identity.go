package clients

import (
	"context"
	"net/url"

	"bookflow/models"
)

// IdentityClient talks to the identity/base service, which owns contacts,
// companies, users and credentials.
type IdentityClient struct {
	http *HTTPClient
}

func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{http: NewHTTPClient(baseURL)}
}

// Ping reports whether the identity service is reachable.
func (c *IdentityClient) Ping(ctx context.Context) error {
	return c.http.Ping(ctx)
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type InviteInput struct {
	Token      string `json:"token"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Password   string `json:"password"`
}

func (c *IdentityClient) SignIn(ctx context.Context, in SignInInput) (*models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.http.Post(ctx, "/api/v1/auth/sign-in", in, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *IdentityClient) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	var pair models.TokenPair
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.http.Post(ctx, "/api/v1/auth/refresh", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *IdentityClient) AcceptInvite(ctx context.Context, in InviteInput) (*models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.http.Post(ctx, "/api/v1/invites/accept", in, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *IdentityClient) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	var contact models.Contact
	if err := c.http.Get(ctx, "/api/v1/contacts/"+url.PathEscape(contactID), &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *IdentityClient) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	var created models.Contact
	if err := c.http.Post(ctx, "/api/v1/contacts", contact, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *IdentityClient) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	var company models.Company
	if err := c.http.Get(ctx, "/api/v1/companies/"+url.PathEscape(companyID), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *IdentityClient) UpdateCompany(ctx context.Context, companyID string, company models.Company) (*models.Company, error) {
	var updated models.Company
	if err := c.http.Put(ctx, "/api/v1/companies/"+url.PathEscape(companyID), company, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *IdentityClient) ListEmployees(ctx context.Context, companyID string) ([]models.Employee, error) {
	var employees []models.Employee
	path := "/api/v1/companies/" + url.PathEscape(companyID) + "/employees"
	if err := c.http.Get(ctx, path, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *IdentityClient) CreateEmployee(ctx context.Context, companyID string, employee models.Employee) (*models.Employee, error) {
	var created models.Employee
	path := "/api/v1/companies/" + url.PathEscape(companyID) + "/employees"
	if err := c.http.Post(ctx, path, employee, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *IdentityClient) UpdateEmployee(ctx context.Context, companyID, employeeID string, employee models.Employee) (*models.Employee, error) {
	var updated models.Employee
	path := "/api/v1/companies/" + url.PathEscape(companyID) + "/employees/" + url.PathEscape(employeeID)
	if err := c.http.Put(ctx, path, employee, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *IdentityClient) DeleteEmployee(ctx context.Context, companyID, employeeID string) error {
	path := "/api/v1/companies/" + url.PathEscape(companyID) + "/employees/" + url.PathEscape(employeeID)
	return c.http.Delete(ctx, path)
}
