package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// customFile is the on-disk shape of a custom profile document: one or
// more profiles under a top-level "profiles" key.
type customFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadInto reads custom profile definitions from YAML and registers
// them. Profiles without an explicit type register as custom.
func LoadInto(l *Library, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading profiles: %w", err)
	}

	var doc customFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("parsing profiles: %w", err)
	}

	for i := range doc.Profiles {
		p := &doc.Profiles[i]
		if p.ID == "" {
			return 0, fmt.Errorf("profile %d: missing id", i)
		}
		if p.Type == "" {
			p.Type = TypeCustom
		}
		l.Register(*p)
	}
	return len(doc.Profiles), nil
}

// LoadFile registers custom profiles from a YAML file.
func LoadFile(l *Library, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening profile file: %w", err)
	}
	defer f.Close()

	n, err := LoadInto(l, f)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}
	return n, nil
}
