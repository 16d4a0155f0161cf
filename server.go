package main

import (
	"embed"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aylamich/portfolio/internal/carousel"
	"github.com/aylamich/portfolio/internal/config"
	"github.com/aylamich/portfolio/internal/content"
	"github.com/aylamich/portfolio/internal/logging"
	"github.com/aylamich/portfolio/internal/prefstore"
	"github.com/aylamich/portfolio/internal/settings"
)

//go:embed templates/*.html
var templatesFS embed.FS

type app struct {
	cfg    config.Config
	logger *zap.Logger
	table  *content.Table
	// nil keeps preferences in cookies
	prefs prefstore.KV
}

// page is the data every template renders from.
type page struct {
	Lang      content.Lang
	OtherLang string
	Dark      bool
	R         content.Record
	Carousel  carouselView
	Year      int
}

type carouselView struct {
	Index    int
	Prev     int
	Next     int
	Projects []content.Project
}

func newCarouselView(projects []content.Project, index int) carouselView {
	n := len(projects)
	return carouselView{
		Index:    carousel.Wrap(index, n),
		Prev:     carousel.Retreat(index, n),
		Next:     carousel.Advance(index, n),
		Projects: carousel.Window(projects, index),
	}
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
	}).ParseFS(templatesFS, "templates/*.html")
}

func newRouter(a *app) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Requests(a.logger), clientHints(), a.visitorMiddleware())
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", a.cfg.StaticDir)
	for _, name := range []string{"cv-en.pdf", "cv-pt.pdf", "profile.png"} {
		r.StaticFile("/"+name, filepath.Join(a.cfg.StaticDir, name))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Full page
	r.GET("/", func(c *gin.Context) {
		_, doc := a.loadSettings(c)
		a.render(c, "index.html", a.newPage(doc, queryIndex(c)))
	})

	// HTMX fragments
	r.GET("/projects", a.fragment("projects.html"))
	r.GET("/experience-content", a.fragment("experience.html"))
	r.GET("/education-content", a.fragment("education.html"))
	r.GET("/skills-content", a.fragment("skills.html"))

	r.POST("/settings/theme", func(c *gin.Context) {
		store, _ := a.loadSettings(c)
		theme := store.ToggleTheme()
		rec, _ := a.table.Resolve(store.Lang())
		index := carousel.Wrap(queryIndex(c), len(rec.Projects))
		a.logger.Debug("theme toggled", zap.String("theme", theme.String()))
		redirectHome(c, index)
	})

	r.POST("/settings/lang", func(c *gin.Context) {
		store, _ := a.loadSettings(c)
		lang := store.ToggleLang()
		rec, _ := a.table.Resolve(lang)
		// keep the carousel position against the new project list
		index := carousel.Rebase(queryIndex(c), len(rec.Projects))
		a.logger.Debug("language toggled", zap.String("lang", lang.String()), zap.Int("index", index))
		redirectHome(c, index)
	})

	return r, nil
}

// Ask browsers for the colour-scheme hint on subsequent requests.
func clientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", colorSchemeHint)
		c.Header("Critical-CH", colorSchemeHint)
		c.Header("Vary", colorSchemeHint+", Cookie")
		c.Next()
	}
}

func (a *app) loadSettings(c *gin.Context) (*settings.Store, *document) {
	doc := &document{}
	store := settings.New(a.portsFor(c), doc, a.logger)
	store.Init()
	return store, doc
}

func (a *app) newPage(doc *document, index int) page {
	rec, lang := a.table.Resolve(doc.lang)
	if lang != doc.lang {
		a.logger.Warn("no content for language, using default",
			zap.String("lang", doc.lang.String()),
			zap.String("default", lang.String()),
		)
	}
	return page{
		Lang:      lang,
		OtherLang: lang.Toggle().String(),
		Dark:      doc.dark,
		R:         rec,
		Carousel:  newCarouselView(rec.Projects, index),
		Year:      time.Now().Year(),
	}
}

func (a *app) fragment(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, doc := a.loadSettings(c)
		a.render(c, name, a.newPage(doc, queryIndex(c)))
	}
}

func (a *app) render(c *gin.Context, name string, p page) {
	c.Header("Content-Language", p.Lang.String())
	c.HTML(http.StatusOK, name, p)
}

// queryIndex reads the carousel index from the form or query. Any integer
// is accepted; unparsable values start at zero.
func queryIndex(c *gin.Context) int {
	raw := c.PostForm("p")
	if raw == "" {
		raw = c.Query("p")
	}
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return index
}

func redirectHome(c *gin.Context, index int) {
	target := "/?p=" + strconv.Itoa(index)
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", target)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}
