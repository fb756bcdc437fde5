package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultJurisdictions maps lowercase jurisdiction hints (US state names and
// their two-letter abbreviations) to the registry's jurisdiction codes. The
// table is deliberately small; it is a convenience for the search form, not a
// gazetteer. Hints it does not know simply mean "do not filter by jurisdiction".
var defaultJurisdictions = map[string]string{
	"california": "us_ca",
	"ca":         "us_ca",
	"illinois":   "us_il",
	"il":         "us_il",
	"delaware":   "us_de",
	"de":         "us_de",
	"new york":   "us_ny",
	"ny":         "us_ny",
	"texas":      "us_tx",
	"tx":         "us_tx",
	"florida":    "us_fl",
	"fl":         "us_fl",
	"nevada":     "us_nv",
	"nv":         "us_nv",
}

// jurisdictionsFile is the structure of the optional jurisdictions YAML file.
// Entries extend or override the built-in table.
type jurisdictionsFile struct {
	Jurisdictions map[string]string `yaml:"jurisdictions"`
}

// LoadJurisdictions builds the hint-to-code table: the built-in defaults,
// extended by the YAML file at path if one exists. A missing file is not an
// error; the file being optional lets deployments add local jurisdictions
// without a rebuild. The returned map is freshly allocated and safe for the
// caller to treat as immutable.
func LoadJurisdictions(path string) (map[string]string, error) {
	table := make(map[string]string, len(defaultJurisdictions))
	for hint, code := range defaultJurisdictions {
		table[hint] = code
	}

	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("read jurisdictions file: %w", err)
	}

	var file jurisdictionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse jurisdictions file: %w", err)
	}

	for hint, code := range file.Jurisdictions {
		hint = strings.ToLower(strings.TrimSpace(hint))
		code = strings.TrimSpace(code)
		if hint == "" || code == "" {
			continue
		}
		table[hint] = code
	}

	return table, nil
}
