package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
	"github.com/NOMAN1802/ibooking/internal/store"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func seedUser(t *testing.T, col *store.Memory, email string, role models.Role) {
	t.Helper()
	_, err := col.InsertOne(context.Background(), models.User{Email: email, Name: "T", Role: role})
	require.NoError(t, err)
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := GenerateToken(TokenPayload{Email: email, Name: "T"}, []byte(testSecret))
	require.NoError(t, err)
	return token
}

// guardedRouter wires a counter behind the full pipeline so tests can
// prove whether the protected handler ran.
func guardedRouter(users *registry.Users, ran *bool) *gin.Engine {
	guard := NewGuard(testSecret, users)
	r := gin.New()
	r.Use(ErrorBoundary())
	r.PATCH("/guarded/:id", guard.Authenticate(), guard.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		*ran = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doPatch(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/guarded/1", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticateMissingToken(t *testing.T) {
	users := registry.NewUsers(store.NewMemory())
	var ran bool
	r := guardedRouter(users, &ran)

	w := doPatch(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, ran)

	body := errEnvelope(t, w)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "unauthorized access", body["message"])
}

func TestAuthenticateGarbageToken(t *testing.T) {
	users := registry.NewUsers(store.NewMemory())
	var ran bool
	r := guardedRouter(users, &ran)

	w := doPatch(r, "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, ran)
}

func TestRequireRoleForbidsGuest(t *testing.T) {
	col := store.NewMemory()
	seedUser(t, col, "guest@x.io", models.RoleGuest)
	users := registry.NewUsers(col)

	var ran bool
	r := guardedRouter(users, &ran)

	w := doPatch(r, tokenFor(t, "guest@x.io"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	// The gated handler must never have executed.
	assert.False(t, ran)

	body := errEnvelope(t, w)
	assert.Equal(t, true, body["error"])
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	col := store.NewMemory()
	seedUser(t, col, "root@x.io", models.RoleAdmin)
	users := registry.NewUsers(col)

	var ran bool
	r := guardedRouter(users, &ran)

	w := doPatch(r, tokenFor(t, "root@x.io"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ran)
}

func TestRequireRoleUnknownCallerForbidden(t *testing.T) {
	// Valid token, but no stored account: role resolves to none.
	users := registry.NewUsers(store.NewMemory())
	var ran bool
	r := guardedRouter(users, &ran)

	w := doPatch(r, tokenFor(t, "ghost@x.io"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, ran)
}

// RequireRole without Authenticate in front must fail closed, never
// resolve a role for an unverified caller.
func TestRequireRoleFailsClosedWithoutAuthenticate(t *testing.T) {
	col := store.NewMemory()
	seedUser(t, col, "root@x.io", models.RoleAdmin)
	guard := NewGuard(testSecret, registry.NewUsers(col))

	var ran bool
	r := gin.New()
	r.PATCH("/guarded/:id", guard.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		ran = true
	})

	w := doPatch(r, tokenFor(t, "root@x.io"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, ran)
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	col := store.NewMemory()
	seedUser(t, col, "eve@x.io", models.RoleGuest)
	guard := NewGuard(testSecret, registry.NewUsers(col))

	r := gin.New()
	var seen string
	r.GET("/me", guard.Authenticate(), func(c *gin.Context) {
		seen = EmailFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "eve@x.io"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "eve@x.io", seen)
}
