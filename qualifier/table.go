package qualifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTable reads a qualifier table from a YAML file. The file holds a list
// of pattern/scale pairs:
//
//	- pattern: thousands?
//	  scale: 1000
//	- pattern: lakhs?
//	  scale: 100000
//
// The loaded table replaces the default entirely; include the defaults in
// the file if they should still apply.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading qualifier table: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing qualifier table %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("qualifier table %s: no entries", path)
	}

	for _, e := range table {
		if e.Pattern == "" {
			return nil, fmt.Errorf("qualifier table %s: entry with empty pattern", path)
		}
		if e.Scale <= 0 {
			return nil, fmt.Errorf("qualifier table %s: pattern %q has non-positive scale %v", path, e.Pattern, e.Scale)
		}
	}

	return table, nil
}
