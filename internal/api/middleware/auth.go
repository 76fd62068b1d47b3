package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth resolves session tokens to user records and gates routes by role.
type Auth struct {
	repos *repository.Repos
	jwt   *JWT
}

func NewAuth(repos *repository.Repos, jwt *JWT) *Auth {
	return &Auth{repos: repos, jwt: jwt}
}

// Authenticated validates the bearer token, loads the referenced user and
// attaches both claims and user to the request context. A token whose user no
// longer exists yields 404.
func (a *Auth) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		} else {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenStr = cookie
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required (header or cookie)"})
				return
			}
		}

		claims, err := a.jwt.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
			return
		}

		usr, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
			return
		}

		c.Set("claims", claims)
		c.Set("currentUser", usr)
		c.Next()
	}
}

// Roles rejects callers whose role is not in the allow-list.
func (a *Auth) Roles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticated.
func CurrentUser(c *gin.Context) (user.User, bool) {
	val, exists := c.Get("currentUser")
	if !exists {
		return user.User{}, false
	}
	usr, ok := val.(user.User)
	return usr, ok
}

func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
