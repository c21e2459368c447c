package risk

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	dErrors "contium/pkg/domain-errors"
)

// PriceBand is the market reference range for one harmonized-system code.
type PriceBand struct {
	Product string  `json:"product" yaml:"product"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Avg     float64 `json:"avg" yaml:"avg"`
}

// ReferenceTable maps harmonized-system codes to price bands. It is read-only
// after construction.
type ReferenceTable struct {
	bands map[string]PriceBand
}

// NewReferenceTable validates every band and returns a table over a copy of bands.
func NewReferenceTable(bands map[string]PriceBand) (*ReferenceTable, error) {
	copied := make(map[string]PriceBand, len(bands))
	for code, band := range bands {
		if code == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "reference band has empty hs code")
		}
		if band.Avg <= 0 {
			return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("reference band %s: avg must be positive", code))
		}
		if band.Min > band.Avg || band.Avg > band.Max {
			return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("reference band %s: expected min <= avg <= max", code))
		}
		copied[code] = band
	}
	return &ReferenceTable{bands: copied}, nil
}

// DefaultTable returns the built-in market reference table.
func DefaultTable() *ReferenceTable {
	return &ReferenceTable{bands: map[string]PriceBand{
		"8471.30": {Product: "Laptops", Min: 450, Max: 800, Avg: 625},
		"8517.12": {Product: "Smartphones", Min: 200, Max: 1200, Avg: 700},
		"6403.99": {Product: "Footwear", Min: 25, Max: 150, Avg: 85},
		"8528.72": {Product: "TVs", Min: 150, Max: 500, Avg: 320},
		"9403.60": {Product: "Furniture", Min: 50, Max: 300, Avg: 175},
	}}
}

// Lookup returns the band for code, if any.
func (t *ReferenceTable) Lookup(code string) (PriceBand, bool) {
	band, ok := t.bands[code]
	return band, ok
}

// Entry is a code and its band, used for listing the table.
type Entry struct {
	HSCode string `json:"hsCode"`
	PriceBand
}

// Entries returns all bands sorted by hs code.
func (t *ReferenceTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.bands))
	for code, band := range t.bands {
		out = append(out, Entry{HSCode: code, PriceBand: band})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HSCode < out[j].HSCode })
	return out
}

type referenceFile struct {
	Bands map[string]PriceBand `yaml:"bands"`
}

// LoadReferenceTable reads a YAML file of the form:
//
//	bands:
//	  "8471.30": {product: Laptops, min: 450, max: 800, avg: 625}
func LoadReferenceTable(path string) (*ReferenceTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference prices: %w", err)
	}
	var file referenceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "parse reference prices")
	}
	if len(file.Bands) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "reference prices file has no bands")
	}
	return NewReferenceTable(file.Bands)
}
