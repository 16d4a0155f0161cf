// Package content holds the bilingual résumé content shown on the site.
package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported content language.
type Lang string

const (
	EN Lang = "en"
	PT Lang = "pt"
)

// DefaultLang is used when no valid preference exists.
const DefaultLang = EN

// Supported lists every language the table carries, in display order.
func Supported() []Lang {
	return []Lang{EN, PT}
}

// ParseLang maps a BCP 47 tag such as "pt-BR" onto a supported language.
func ParseLang(value string) (Lang, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case string(EN):
		return EN, true
	case string(PT):
		return PT, true
	}
	return "", false
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == EN {
		return PT
	}
	return EN
}

func (l Lang) String() string {
	return string(l)
}

// MissingLanguageError is returned when a record is requested for a language
// outside the supported set.
type MissingLanguageError struct {
	Lang Lang
}

func (e *MissingLanguageError) Error() string {
	return fmt.Sprintf("content: no record for language %q", string(e.Lang))
}

// Record is everything displayed for one language.
type Record struct {
	Name         string       `yaml:"name"`
	Role         string       `yaml:"role"`
	Location     string       `yaml:"location"`
	Email        string       `yaml:"email"`
	Phone        string       `yaml:"phone"`
	AgeLine      string       `yaml:"age_line"`
	Photo        string       `yaml:"photo"`
	Highlights   []string     `yaml:"highlights"`
	Labels       Labels       `yaml:"labels"`
	UI           UI           `yaml:"ui"`
	UpdatedValue string       `yaml:"updated_value"`
	Sections     []Section    `yaml:"sections"`
	About        string       `yaml:"about"`
	Links        []Link       `yaml:"links"`
	Experience   []Experience `yaml:"experience"`
	Education    []Education  `yaml:"education"`
	Skills       []SkillGroup `yaml:"skills"`
	Projects     []Project    `yaml:"projects"`
	Footer       string       `yaml:"footer"`
}

// Labels are the sidebar headings.
type Labels struct {
	Links    string `yaml:"links"`
	Contact  string `yaml:"contact"`
	Sections string `yaml:"sections"`
	Updated  string `yaml:"updated"`
}

// UI holds chrome strings that are not résumé content.
type UI struct {
	Heading        string `yaml:"heading"`
	SwitchLanguage string `yaml:"switch_language"`
	ToggleTheme    string `yaml:"toggle_theme"`
	LightMode      string `yaml:"light_mode"`
	DarkMode       string `yaml:"dark_mode"`
	PrevProjects   string `yaml:"prev_projects"`
	NextProjects   string `yaml:"next_projects"`
	PhotoAlt       string `yaml:"photo_alt"`
}

// Section is one navigable block of the page. IDs double as URL anchors.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Link is a labelled URL. Download, when set, is the suggested file name.
type Link struct {
	Label    string `yaml:"label"`
	URL      string `yaml:"url"`
	Download string `yaml:"download,omitempty"`
}

// External reports whether the link leaves the site and must open in a new
// browsing context without an opener reference.
func (l Link) External() bool {
	return strings.HasPrefix(l.URL, "http")
}

type Experience struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Bullets []string `yaml:"bullets"`
}

// Key identifies the entry within its list.
func (e Experience) Key() string {
	return e.Title + "-" + e.Company
}

type Education struct {
	Course  string `yaml:"course"`
	School  string `yaml:"school"`
	Period  string `yaml:"period"`
	Details string `yaml:"details"`
}

type SkillGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Links       []Link   `yaml:"links"`
}

// Section returns the section with the given id, or a zero Section.
func (r Record) Section(id string) Section {
	for _, s := range r.Sections {
		if s.ID == id {
			return s
		}
	}
	return Section{}
}

// Table maps every supported language to its record. It has one field per
// language so a missing entry cannot be built.
type Table struct {
	en Record
	pt Record
}

// NewTable validates both records and builds the table.
func NewTable(en, pt Record) (*Table, error) {
	t := &Table{en: en, pt: pt}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the record for lang.
func (t *Table) Get(lang Lang) (Record, error) {
	switch lang {
	case EN:
		return t.en, nil
	case PT:
		return t.pt, nil
	}
	return Record{}, &MissingLanguageError{Lang: lang}
}

// Resolve returns the record for lang, falling back to DefaultLang when lang
// is not supported. The returned Lang is the one actually used.
func (t *Table) Resolve(lang Lang) (Record, Lang) {
	if rec, err := t.Get(lang); err == nil {
		return rec, lang
	}
	rec, _ := t.Get(DefaultLang)
	return rec, DefaultLang
}
