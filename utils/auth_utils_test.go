package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetActor_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	actor := GetActor(c)
	assert.False(t, actor.Authenticated)
	assert.Zero(t, actor.ID)
}

func TestGetActor_WithClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(string(UserContextKey), &UserClaims{UserID: 5, UUID: "abc", IsStaff: true})

	actor := GetActor(c)
	assert.True(t, actor.Authenticated)
	assert.Equal(t, uint(5), actor.ID)
	assert.Equal(t, "abc", actor.UUID)
	assert.True(t, actor.IsStaff)
}
