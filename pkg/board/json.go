package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a canonical board from its JSON bridge format.
// Bridges are expected to have resolved tool-specific quirks (units,
// net pad population, per-net voltage inference) before emitting it;
// Load validates shape, not completeness.
func Load(r io.Reader) (*Board, error) {
	var b Board
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding board: %w", err)
	}
	if b.Units == "" {
		b.Units = UnitsMM
	}
	return &b, nil
}

// LoadFile reads a canonical board JSON file.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}
