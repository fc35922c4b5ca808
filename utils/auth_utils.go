package utils

import (
	"github.com/giftwish/api-go/engine"
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID  uint   `json:"user_id"`
	UUID    string `json:"uuid"`
	IsStaff bool   `json:"is_staff"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GetActor resolves the request's actor for the rule engines; requests
// without claims resolve to the anonymous actor.
func GetActor(c *gin.Context) engine.Actor {
	claims := GetUser(c)
	if claims == nil {
		return engine.Anonymous
	}
	return engine.Actor{
		ID:            claims.UserID,
		UUID:          claims.UUID,
		IsStaff:       claims.IsStaff,
		Authenticated: true,
	}
}
