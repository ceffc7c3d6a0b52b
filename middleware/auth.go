package middleware

import (
	"net/http"
	"time"

	"bookflow/config"
	"bookflow/models"
	"bookflow/utils"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	refreshCookieMaxAge = 30 * 24 * time.Hour
)

// SetAuthCookies writes the access/refresh token cookies. The access
// cookie's lifetime follows the token's exp claim; the claim is only read
// here to size the cookie, authorization always re-validates.
func SetAuthCookies(c *gin.Context, pair *models.TokenPair) {
	accessMaxAge := pair.ExpiresIn
	if exp, err := utils.TokenExpiry(pair.AccessToken); err == nil {
		accessMaxAge = int(time.Until(exp).Seconds())
	}

	secure := config.AppConfig.SecureCookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, pair.AccessToken, accessMaxAge, "/", "", secure, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, int(refreshCookieMaxAge.Seconds()), "/", "", secure, true)
}

// ClearAuthCookies removes both token cookies on sign-out.
func ClearAuthCookies(c *gin.Context) {
	secure := config.AppConfig.SecureCookie
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", secure, true)
}

// JWTAuthMiddleware authenticates company-admin requests from the token
// cookies. An expired access token is refreshed through the single-flight
// Refresher so concurrent requests from one browser trigger exactly one
// refresh call against the identity service.
func JWTAuthMiddleware(refresher *utils.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if access, err := c.Cookie(AccessTokenCookie); err == nil {
			if claims, err := utils.ValidateToken(access); err == nil {
				if sub, err := utils.SubjectFromClaims(claims); err == nil {
					c.Set("userID", sub)
					c.Next()
					return
				}
			}
		}

		refresh, err := c.Cookie(RefreshTokenCookie)
		if err != nil || refresh == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
			return
		}

		pair, err := refresher.Refresh(c.Request.Context(), refresh)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired, sign in again"})
			return
		}

		claims, err := utils.ValidateToken(pair.AccessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired, sign in again"})
			return
		}
		sub, err := utils.SubjectFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired, sign in again"})
			return
		}

		SetAuthCookies(c, pair)
		c.Set("userID", sub)
		c.Next()
	}
}
