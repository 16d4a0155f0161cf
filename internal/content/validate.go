package content

import (
	"strings"

	"github.com/pkg/errors"
)

// Validate checks every record on its own and then checks that all languages
// declare the same sections in the same order, so anchors survive a switch.
func (t *Table) Validate() (err error) {
	var ref []Section
	for i, lang := range Supported() {
		var rec Record
		rec, err = t.Get(lang)
		if err != nil {
			return err
		}
		err = rec.Validate()
		if err != nil {
			err = errors.Wrapf(err, "content %s", lang)
			return err
		}
		if i == 0 {
			ref = rec.Sections
			continue
		}
		if len(rec.Sections) != len(ref) {
			err = errors.Errorf("content %s: has %d sections, %s has %d", lang, len(rec.Sections), Supported()[0], len(ref))
			return err
		}
		for j := range ref {
			if rec.Sections[j].ID != ref[j].ID {
				err = errors.Errorf("content %s: section %d is %q, expected %q", lang, j, rec.Sections[j].ID, ref[j].ID)
				return err
			}
		}
	}
	return err
}

// Validate checks that one record is well formed: required identity fields
// are present and every list has non-empty, unique keys.
func (r Record) Validate() (err error) {
	if strings.TrimSpace(r.Name) == "" {
		err = errors.New("name is required")
		return err
	}
	if len(r.Sections) == 0 {
		err = errors.New("no sections declared")
		return err
	}

	checks := []struct {
		list string
		keys []string
	}{
		{"sections", mapKeys(r.Sections, func(s Section) string { return s.ID })},
		{"highlights", r.Highlights},
		{"links", mapKeys(r.Links, func(l Link) string { return l.Label })},
		{"experience", mapKeys(r.Experience, Experience.Key)},
		{"education", mapKeys(r.Education, func(e Education) string { return e.Course })},
		{"skills", mapKeys(r.Skills, func(g SkillGroup) string { return g.Title })},
		{"projects", mapKeys(r.Projects, func(p Project) string { return p.Name })},
	}
	for _, c := range checks {
		if err = uniqueKeys(c.list, c.keys); err != nil {
			return err
		}
	}

	for _, g := range r.Skills {
		if err = uniqueKeys("skills "+g.Title, g.Items); err != nil {
			return err
		}
	}
	for _, p := range r.Projects {
		if err = uniqueKeys("project "+p.Name+" tech", p.Tech); err != nil {
			return err
		}
		links := mapKeys(p.Links, func(l Link) string { return l.Label })
		if err = uniqueKeys("project "+p.Name+" links", links); err != nil {
			return err
		}
	}
	return err
}

func mapKeys[T any](items []T, key func(T) string) []string {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, key(it))
	}
	return keys
}

func uniqueKeys(list string, keys []string) error {
	seen := make(map[string]int, len(keys))
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			return errors.Errorf("%s: entry at index %d has an empty key", list, i)
		}
		if prev, ok := seen[k]; ok {
			return errors.Errorf("%s: entries %d and %d share key %q", list, prev, i, k)
		}
		seen[k] = i
	}
	return nil
}
