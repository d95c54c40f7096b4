package cookie

import "github.com/gin-gonic/gin"

// AccessTokenCookieName is set by the account frontend on the shared domain.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
