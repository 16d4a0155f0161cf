package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aylamich/portfolio/internal/content"
	"github.com/aylamich/portfolio/internal/prefstore"
	"github.com/aylamich/portfolio/internal/settings"
)

// colorSchemeHint is the client hint carrying prefers-color-scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// requestPorts serves preferences for one request, from the KV store when the
// visitor has an id and from cookies otherwise.
type requestPorts struct {
	c       *gin.Context
	kv      prefstore.KV
	visitor string
	secure  bool
}

func (a *app) portsFor(c *gin.Context) *requestPorts {
	return &requestPorts{
		c:       c,
		kv:      a.prefs,
		visitor: visitorFrom(c),
		secure:  a.cfg.CookieSecure,
	}
}

func (p *requestPorts) serverSide() bool {
	return p.kv != nil && p.visitor != ""
}

func (p *requestPorts) ReadPreference(key string) (string, bool, error) {
	if p.serverSide() {
		value, ok, err := p.kv.Get(p.c.Request.Context(), p.visitor, key)
		if err != nil {
			return "", false, fmt.Errorf("%w: %v", settings.ErrStorageUnavailable, err)
		}
		return value, ok, nil
	}

	value, err := p.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", settings.ErrStorageUnavailable, err)
	}
	return value, true, nil
}

func (p *requestPorts) WritePreference(key, value string) error {
	if p.serverSide() {
		if err := p.kv.Set(p.c.Request.Context(), p.visitor, key, value); err != nil {
			return fmt.Errorf("%w: %v", settings.ErrStorageUnavailable, err)
		}
		return nil
	}

	p.c.SetSameSite(http.SameSiteLaxMode)
	p.c.SetCookie(key, value, preferenceMaxAge, "/", "", p.secure, true)
	return nil
}

func (p *requestPorts) PrefersDark() (bool, bool) {
	hint := strings.Trim(strings.TrimSpace(p.c.GetHeader(colorSchemeHint)), `"`)
	switch hint {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// document is the <html> element state a page is rendered with.
type document struct {
	dark bool
	lang content.Lang
}

func (d *document) SetDark(dark bool) {
	d.dark = dark
}

func (d *document) SetLang(lang content.Lang) {
	d.lang = lang
}
