package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Session cookies are issued by the storefront; this service only reads them.
const AccessTokenCookieName = "access_token"

// AccessToken returns the session cookie's token, if the request carries a non-blank one.
func AccessToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
