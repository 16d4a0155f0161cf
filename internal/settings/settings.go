// Package settings owns the theme and language preferences: it derives the
// initial values, keeps the document marker in step, and writes every change
// through to a durable key-value store.
package settings

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aylamich/portfolio/internal/content"
)

// Theme is the colour scheme of the page.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Preference keys in the durable store.
const (
	KeyTheme = "theme"
	KeyLang  = "lang"
)

// ErrStorageUnavailable marks a preference read or write that could not reach
// the store. It is never surfaced to the visitor.
var ErrStorageUnavailable = errors.New("preference storage unavailable")

// ParseTheme accepts "dark" or "light".
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case Dark, Light:
		return Theme(value), true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

// Ports are the host capabilities the store depends on.
type Ports interface {
	// ReadPreference returns the stored value for key; ok is false when nothing is stored.
	ReadPreference(key string) (value string, ok bool, err error)
	// WritePreference stores value under key.
	WritePreference(key, value string) error
	// PrefersDark reports the host colour-scheme preference; supported is false
	// when the host cannot tell.
	PrefersDark() (dark bool, supported bool)
}

// Document receives the presentation side effects of a state change.
type Document interface {
	SetDark(dark bool)
	SetLang(lang content.Lang)
}

// Store holds the active theme and language for one page.
type Store struct {
	ports  Ports
	doc    Document
	logger *zap.Logger

	theme Theme
	lang  content.Lang
}

// New returns a store with the fallback values applied. Call Init to load
// the persisted or derived preferences.
func New(ports Ports, doc Document, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		ports:  ports,
		doc:    doc,
		logger: logger,
		theme:  Light,
		lang:   content.DefaultLang,
	}
}

// Init loads both preferences and applies them to the document.
func (s *Store) Init() {
	s.theme = s.LoadInitialTheme()
	s.lang = s.LoadInitialLang()
	s.apply()
}

// LoadInitialTheme returns the persisted theme, or dark when the host reports
// a dark preference, or light.
func (s *Store) LoadInitialTheme() Theme {
	if value, ok := s.read(KeyTheme); ok {
		if theme, valid := ParseTheme(value); valid {
			return theme
		}
		s.logger.Debug("ignoring stored theme", zap.String("value", value))
	}
	if dark, supported := s.ports.PrefersDark(); supported && dark {
		return Dark
	}
	return Light
}

// LoadInitialLang returns the persisted language or content.DefaultLang.
func (s *Store) LoadInitialLang() content.Lang {
	if value, ok := s.read(KeyLang); ok {
		if lang, valid := content.ParseLang(value); valid {
			return lang
		}
		s.logger.Debug("ignoring stored language", zap.String("value", value))
	}
	return content.DefaultLang
}

func (s *Store) Theme() Theme {
	return s.theme
}

func (s *Store) Lang() content.Lang {
	return s.lang
}

// SetTheme updates the document and persists theme.
func (s *Store) SetTheme(theme Theme) {
	s.theme = theme
	s.apply()
	s.Persist(KeyTheme, string(theme))
}

// ToggleTheme flips between dark and light and returns the new theme.
func (s *Store) ToggleTheme() Theme {
	s.SetTheme(s.theme.Toggle())
	return s.theme
}

// SetLang updates the document and persists lang.
func (s *Store) SetLang(lang content.Lang) {
	s.lang = lang
	s.apply()
	s.Persist(KeyLang, string(lang))
}

// ToggleLang flips between the two languages and returns the new one.
func (s *Store) ToggleLang() content.Lang {
	s.SetLang(s.lang.Toggle())
	return s.lang
}

// Persist writes value under key. Failures are logged and dropped.
func (s *Store) Persist(key, value string) {
	if err := s.ports.WritePreference(key, value); err != nil {
		s.logger.Warn("persist preference failed",
			zap.String("key", key),
			zap.String("value", value),
			zap.Error(err),
		)
	}
}

func (s *Store) read(key string) (string, bool) {
	value, ok, err := s.ports.ReadPreference(key)
	if err != nil {
		s.logger.Warn("read preference failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, ok
}

func (s *Store) apply() {
	if s.doc == nil {
		return
	}
	s.doc.SetDark(s.theme == Dark)
	s.doc.SetLang(s.lang)
}
