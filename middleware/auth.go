package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

const sessionKey = "session"

// SessionResolver looks up the session behind a cookie value.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*domain.Session, error)
}

// SessionMiddleware loads the session named by the session cookie into the gin context.
// Unknown or expired sessions clear the cookie; the request continues anonymously.
func SessionMiddleware(resolver SessionResolver, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(sessionKey, sess)
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			ClearSessionCookie(c, cfg)
		default:
			GetLoggerFromGinContext(c).Warn("Failed to resolve session", zap.Error(err))
		}
		c.Next()
	}
}

// CurrentSession returns the session of the request, or nil when anonymous.
func CurrentSession(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

// SetSession stores sess for the rest of the request, e.g. right after login.
func SetSession(c *gin.Context, sess *domain.Session) {
	c.Set(sessionKey, sess)
}

// RequireAdmin redirects anonymous requests to loginPath and forbids end users.
// With roles given, only those roles and super_admin may pass. admin passes every
// area group but not one that names super_admin.
func RequireAdmin(loginPath string, roles ...domain.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			redirectToLogin(c, loginPath)
			return
		}
		if sess.Kind != domain.ActorAdmin || sess.Admin == nil {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrUnauthorized)
			return
		}
		if len(roles) > 0 && !adminCovers(sess.Admin.Role, roles) {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireUser redirects anonymous requests to loginPath and forbids admins.
func RequireUser(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			redirectToLogin(c, loginPath)
			return
		}
		if sess.Kind != domain.ActorUser || sess.User == nil {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func adminCovers(role domain.AdminRole, roles []domain.AdminRole) bool {
	if role == domain.RoleSuperAdmin || slices.Contains(roles, role) {
		return true
	}
	return role == domain.RoleAdmin && !slices.Contains(roles, domain.RoleSuperAdmin)
}

func redirectToLogin(c *gin.Context, loginPath string) {
	target := loginPath
	if c.Request.Method == http.MethodGet {
		target += "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	}
	c.Redirect(http.StatusSeeOther, target)
	c.Abort()
}

// SetSessionCookie writes the session cookie. A zero expiry falls back to cfg.MaxAge.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, id string, expiresAt time.Time) {
	maxAge := int(cfg.MaxAge.Seconds())
	if !expiresAt.IsZero() {
		if left := int(time.Until(expiresAt).Seconds()); left < maxAge {
			maxAge = left
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}
