package engine_test

import (
	"net/http"
	"testing"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/store"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	assert.True(t, engine.CanModify(user, user.ID))
	assert.False(t, engine.CanModify(user, other.ID))
	assert.False(t, engine.CanModify(engine.Anonymous, 0))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, engine.IsAdmin(admin))
	assert.False(t, engine.IsAdmin(user))
	assert.False(t, engine.IsAdmin(engine.Anonymous))
	// a staff flag without authentication never grants anything
	assert.False(t, engine.IsAdmin(engine.Actor{IsStaff: true}))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, engine.HTTPStatus(engine.Unauthorized("x")))
	assert.Equal(t, http.StatusForbidden, engine.HTTPStatus(engine.Forbidden("x")))
	assert.Equal(t, http.StatusNotFound, engine.HTTPStatus(engine.NotFound("x")))
	assert.Equal(t, http.StatusBadRequest, engine.HTTPStatus(engine.InvalidRequest("x")))
	// infra errors stay generic
	assert.Equal(t, http.StatusInternalServerError, engine.HTTPStatus(store.ErrDuplicateReply))
}
