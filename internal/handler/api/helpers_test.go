//go:build unit

package api_test

import (
	"net/http"
	"sync"

	"travel-booking/internal/domain/user"
	reqdto "travel-booking/internal/handler/dto/request"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := reqdto.RegisterValidators(v); err != nil {
				panic(err)
			}
		}
	})
	return gin.New()
}

// fakeAuth stands in for the auth middleware: any Authorization header logs in as actor.
func fakeAuth(actor user.Recipient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user", actor)
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}
