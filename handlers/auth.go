package handlers

import (
	"net/http"

	"bookflow/clients"
	"bookflow/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler proxies credential operations to the identity service and
// owns the token cookies.
type AuthHandler struct {
	Identity *clients.IdentityClient
}

func NewAuthHandler(identity *clients.IdentityClient) *AuthHandler {
	return &AuthHandler{Identity: identity}
}

// SignIn exchanges credentials for a token pair. Field-level validation
// errors from the identity service map into the form's error state.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var in struct {
		Email    string `json:"email" form:"email" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials", "fieldErrors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	pair, err := h.Identity.SignIn(c.Request.Context(), clients.SignInInput{
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookies(c, pair)
	getLogger(c).Info("user signed in", zap.String("email", in.Email))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	middleware.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AcceptInvite completes an employee invitation and signs the new user in.
func (h *AuthHandler) AcceptInvite(c *gin.Context) {
	var in struct {
		Token      string `json:"token" form:"token" binding:"required"`
		GivenName  string `json:"givenName" form:"givenName" binding:"required"`
		FamilyName string `json:"familyName" form:"familyName" binding:"required"`
		Password   string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid invite details", "fieldErrors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid invite details"})
		return
	}

	pair, err := h.Identity.AcceptInvite(c.Request.Context(), clients.InviteInput{
		Token:      in.Token,
		GivenName:  in.GivenName,
		FamilyName: in.FamilyName,
		Password:   in.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
