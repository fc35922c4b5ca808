package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/giftwish/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and puts the resolved claims
// into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMessage := claimsFromHeader(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMessage})
			c.Abort()
			return
		}
		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid bearer token is present
// and lets the request through anonymously otherwise. Used for endpoints open
// to unauthenticated actors, like product reserve/unreserve.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := claimsFromHeader(c); claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context) (*utils.UserClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Authorization header is required"
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, "Invalid token format"
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, "Invalid token"
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, "Invalid token claims"
	}
	uuid, _ := claims["uuid"].(string)
	isStaff, _ := claims["is_staff"].(bool)

	return &utils.UserClaims{
		UserID:  uint(userID),
		UUID:    uuid,
		IsStaff: isStaff,
	}, ""
}
