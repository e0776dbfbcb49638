package formula

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fretwork/pitch"
)

var (
	// ErrUnknownFormula is returned when a formula name is not in the catalog.
	ErrUnknownFormula = errors.New("formula: unknown formula name")

	// ErrBadToken is returned when a catalog entry carries an interval token
	// outside the figured vocabulary ("1","b2","2","b3","3","4","b5","5","#5","6","b7","7").
	ErrBadToken = errors.New("formula: unknown interval token")

	// ErrEmptyFormula is returned when a catalog entry has no intervals.
	ErrEmptyFormula = errors.New("formula: formula has no intervals")
)

// tokenQualities maps figured tokens to qualities; the inverse of
// pitch.Quality.String().
var tokenQualities = map[string]pitch.Quality{
	"1": pitch.Unison, "b2": pitch.MinorSecond, "2": pitch.MajorSecond,
	"b3": pitch.MinorThird, "3": pitch.MajorThird, "4": pitch.PerfectFourth,
	"b5": pitch.DiminishedFifth, "5": pitch.PerfectFifth, "#5": pitch.AugmentedFifth,
	"6": pitch.MajorSixth, "b7": pitch.MinorSeventh, "7": pitch.MajorSeventh,
}

// builtin is the default formula catalog. Order inside each list is the
// close-position ordering consumed by the classifier.
var builtin = map[string][]string{
	"maj":   {"1", "3", "5"},
	"min":   {"1", "b3", "5"},
	"dim":   {"1", "b3", "b5"},
	"aug":   {"1", "3", "#5"},
	"sus2":  {"1", "2", "5"},
	"sus4":  {"1", "4", "5"},
	"6":     {"1", "3", "5", "6"},
	"m6":    {"1", "b3", "5", "6"},
	"7":     {"1", "3", "5", "b7"},
	"maj7":  {"1", "3", "5", "7"},
	"m7":    {"1", "b3", "5", "b7"},
	"mMaj7": {"1", "b3", "5", "7"},
	"m7b5":  {"1", "b3", "b5", "b7"},
	"dim7":  {"1", "b3", "b5", "6"},
	"7sus4": {"1", "4", "5", "b7"},
	"add9":  {"1", "3", "5", "2"},
	"madd9": {"1", "b3", "5", "2"},
}

// Catalog is an immutable name → ordered-quality mapping.
type Catalog struct {
	formulas map[string][]pitch.Quality
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := fromTokens(builtin)
	if err != nil {
		// The built-in table is compile-time data; a bad token here is a
		// programmer error.
		panic(err)
	}

	return c
}

// Load reads a YAML catalog (name → token list) from r and overlays it on
// the built-ins: user entries win on name collision, built-ins survive
// otherwise.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("formula: read catalog: %w", err)
	}

	return Parse(raw)
}

// Parse decodes a YAML catalog from raw bytes and overlays it on the
// built-ins. See Load.
func Parse(raw []byte) (*Catalog, error) {
	var user map[string][]string
	if err := yaml.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("formula: decode catalog: %w", err)
	}

	merged := make(map[string][]string, len(builtin)+len(user))
	for name, tokens := range builtin {
		merged[name] = tokens
	}
	for name, tokens := range user {
		merged[name] = tokens
	}

	return fromTokens(merged)
}

// fromTokens resolves token lists to qualities with strict validation.
func fromTokens(src map[string][]string) (*Catalog, error) {
	c := &Catalog{formulas: make(map[string][]pitch.Quality, len(src))}
	for name, tokens := range src {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyFormula, name)
		}
		qs := make([]pitch.Quality, len(tokens))
		for i, tok := range tokens {
			q, ok := tokenQualities[tok]
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrBadToken, tok, name)
			}
			qs[i] = q
		}
		c.formulas[name] = qs
	}

	return c, nil
}

// Qualities returns the ordered quality list for the named formula.
func (c *Catalog) Qualities(name string) ([]pitch.Quality, error) {
	qs, ok := c.formulas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
	}
	out := make([]pitch.Quality, len(qs))
	copy(out, qs)

	return out, nil
}

// Names returns all formula names in sorted order (deterministic listings).
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.formulas))
	for name := range c.formulas {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
