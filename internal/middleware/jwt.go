package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/registry"
)

// TokenTTL is the lifetime of tokens minted by POST /jwt.
const TokenTTL = time.Hour

const ctxEmailKey = "auth_email"

// TokenPayload is the signed-in user identity a token is issued for.
type TokenPayload struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// GenerateToken mints a 1-hour HS256 token carrying the user payload.
func GenerateToken(payload TokenPayload, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"email": payload.Email,
		"name":  payload.Name,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Guard is the ordered authorization pipeline: Authenticate verifies the
// bearer token, RequireRole resolves the caller's stored role. RequireRole
// never runs role resolution for an unverified caller — if it is ever
// reached without claims it fails closed with 401.
type Guard struct {
	secret []byte
	users  *registry.Users
}

func NewGuard(secret string, users *registry.Users) *Guard {
	return &Guard{secret: []byte(secret), users: users}
}

// Authenticate ensures a valid bearer token is present and stashes the
// verified email claim for downstream handlers.
func (g *Guard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			deny(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return g.secret, nil
		})
		if err != nil || !token.Valid {
			deny(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			deny(c, http.StatusUnauthorized, "unauthorized access")
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			deny(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		c.Set(ctxEmailKey, email)
		c.Next()
	}
}

// RequireRole gates a handler on the caller's stored role, looked up by
// the verified email claim. Must be chained after Authenticate.
func (g *Guard) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := EmailFromContext(c)
		if email == "" {
			deny(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		got, err := g.users.RoleOf(c.Request.Context(), email)
		if err != nil {
			Fail(c, err)
			return
		}
		if got != role {
			deny(c, http.StatusForbidden, "Forbidden message")
			return
		}
		c.Next()
	}
}

// EmailFromContext returns the verified token email, "" when the request
// did not pass Authenticate.
func EmailFromContext(c *gin.Context) string {
	if v, ok := c.Get(ctxEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func deny(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": true, "message": msg})
}
