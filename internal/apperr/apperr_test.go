package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("Forbidden message"), http.StatusForbidden},
		{NotFound("room not found"), http.StatusNotFound},
		{Validation("bad input"), http.StatusBadRequest},
		{PaymentProvider("provider down", errors.New("timeout")), http.StatusBadGateway},
		{Persistence("insert room", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestStatusSeesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while approving: %w", NotFound("room not found"))
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, "room not found", UserMessage(wrapped))
}

func TestUserMessageMasksForeignErrors(t *testing.T) {
	assert.Equal(t, "internal server error", UserMessage(errors.New("pq: secret dsn")))
}

func TestPersistenceNamesTheOperation(t *testing.T) {
	err := Persistence("insert booking", errors.New("connection reset"))
	assert.Equal(t, "storage failure on insert booking", UserMessage(err))
	assert.Contains(t, err.Error(), "connection reset")
}
