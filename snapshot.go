package unicorn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadSnapshot opens and decodes a snapshot file. The format is selected by
// extension: .jsonl is the canonical at-rest format, .csv is the original
// dataset export, .json is a JSON export (records at DefaultRecordsPath).
// The set's name is the file base name without its extension.
func LoadSnapshot(file string) (*Set, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", file, err)
	}
	defer f.Close()

	var set *Set
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".jsonl":
		set, err = DecodeSet(f)
	case ".csv":
		set, err = DecodeCSV(f)
	case ".json":
		set, err = DecodeJSON(f, DefaultRecordsPath)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", file, err)
	}

	set.name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return set, nil
}

// SaveSnapshot writes the set to a file in canonical JSONL form.
func SaveSnapshot(file string, s *Set) error {
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for snapshot %q: %w", file, err)
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("error opening snapshot file %q for writing: %w", file, err)
	}
	defer f.Close()

	return EncodeSet(f, s)
}
