package middleware

import (
	"net/http"
	"strings"

	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/jwtutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/dataria445/Monsta/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const userContextKey = "user"

// AuthMiddleware validates the access token and loads the current user.
// The token is read from the accessToken cookie first, then from the
// Authorization header, so both the dashboard and API clients work.
func AuthMiddleware(db *gorm.DB, jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			token := ""
			if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
				token = cookie.Value
			}
			if token == "" {
				authHeader := c.Request().Header.Get("Authorization")
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					token = parts[1]
				}
			}
			if token == "" {
				log.Warn("missing access token")
				prometheus.RecordAuthError("missing_token")
				return apiutil.NewError(http.StatusUnauthorized, "Unauthorized request")
			}

			claims, err := jwtUtil.ValidateAccessToken(token)
			if err != nil {
				log.Warn("invalid access token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return apiutil.NewError(http.StatusUnauthorized, "Invalid Access Token")
			}

			var user model.User
			if err := db.Where("id = ? AND is_deleted IS NOT TRUE", claims.UserID).
				First(&user).Error; err != nil {
				log.Warn("token user not found", zap.Uint("user_id", claims.UserID))
				prometheus.RecordAuthError("unknown_user")
				return apiutil.NewError(http.StatusUnauthorized, "Invalid Access Token")
			}

			c.Set(userContextKey, &user)
			return next(c)
		}
	}
}

// CurrentUser retrieves the authenticated user placed by AuthMiddleware
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}
