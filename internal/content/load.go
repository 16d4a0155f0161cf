package content

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return LoadFS(dataFS)
})

// Default returns the process-wide table built from the embedded data files.
// The files are parsed and validated once.
func Default() (*Table, error) {
	return defaultTable()
}

// LoadFS reads data/en.yaml and data/pt.yaml from fsys.
func LoadFS(fsys fs.FS) (*Table, error) {
	en, err := loadRecord(fsys, EN)
	if err != nil {
		return nil, err
	}
	pt, err := loadRecord(fsys, PT)
	if err != nil {
		return nil, err
	}
	return NewTable(en, pt)
}

func loadRecord(fsys fs.FS, lang Lang) (rec Record, err error) {
	path := "data/" + string(lang) + ".yaml"
	var raw []byte
	raw, err = fs.ReadFile(fsys, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return rec, err
	}
	err = yaml.Unmarshal(raw, &rec)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse content file: %s", path)
		return rec, err
	}
	return rec, err
}
