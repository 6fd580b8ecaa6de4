package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mininotes/notes-service/platform/web/handler"
	"github.com/mininotes/notes-service/sys"
)

const userKey = "userId"

// RequireUser validates the bearer token issued by the chat platform's
// identity service and stashes the stable user id in the request context.
// Failures abort with 401 before any handler logic runs.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Failure("missing bearer token"))
			return
		}

		userID, err := validate(token)
		if err != nil {
			sys.R.Log.Warnw("auth failure", "path", ctx.Request.URL.Path, "error", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Failure("invalid token"))
			return
		}

		ctx.Set(userKey, userID)
		ctx.Next()
	}
}

// UserID reads the authenticated user id resolved by RequireUser
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userKey)
}

func extractToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func validate(token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(sys.Configs.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("token carries no subject")
	}
	return claims.Subject, nil
}
