package v1

import (
	"encoding/base64"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

const (
	flashCookie    = "petopia_flash"
	flashKey       = "flash"
	flashSecureKey = "flash.secure"
	toastKey       = "toast"
)

// pageEffects turns form outcomes into HTTP: success toasts survive the redirect in a
// cookie, error toasts are rendered inline by the page that re-renders the form.
type pageEffects struct {
	c         *gin.Context
	navigated bool
}

func effects(c *gin.Context) *pageEffects {
	return &pageEffects{c: c}
}

func (e *pageEffects) Notify(t logicv1.Toast) {
	if t.Kind == logicv1.ToastSuccess {
		setFlash(e.c, t)
		return
	}
	e.c.Set(toastKey, &t)
}

func (e *pageEffects) Navigate(route string) {
	if e.navigated {
		return
	}
	e.navigated = true
	e.c.Redirect(http.StatusSeeOther, route)
}

func setFlash(c *gin.Context, t logicv1.Toast) {
	raw, err := sonic.Marshal(t)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), 60, "/", "", c.GetBool(flashSecureKey), true)
}

// FlashMiddleware moves the flash cookie of the previous response into the context.
// The flash cookie follows the Secure flag of the session cookie.
func FlashMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(flashSecureKey, cfg.Secure)
		if v, err := c.Cookie(flashCookie); err == nil && v != "" {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(flashCookie, "", -1, "/", "", cfg.Secure, true)
			if raw, err := base64.RawURLEncoding.DecodeString(v); err == nil {
				var t logicv1.Toast
				if sonic.Unmarshal(raw, &t) == nil && t.Title != "" {
					c.Set(flashKey, &t)
				}
			}
		}
		c.Next()
	}
}

func flashOf(c *gin.Context) *logicv1.Toast {
	if v, ok := c.Get(flashKey); ok {
		if t, ok := v.(*logicv1.Toast); ok {
			return t
		}
	}
	return nil
}

func inlineToast(c *gin.Context) *logicv1.Toast {
	if v, ok := c.Get(toastKey); ok {
		if t, ok := v.(*logicv1.Toast); ok {
			return t
		}
	}
	return nil
}
