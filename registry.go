package plurality

import (
	"fmt"
	"sync"
)

const overflowStatKey = "__overflow__"

// Resolver maps a locale identifier to the plural rule for its grammar.
// *Registry is the default implementation.
type Resolver interface {
	Resolve(localeID string) Rule
}

// Config controls registry construction. The zero value yields the built-in
// table with OneSingular as the default rule.
type Config struct {
	// RulesPath optionally names a YAML rules file whose entries extend or
	// override the built-in locale table. See LoadRulesFile for the format.
	RulesPath string
	// Rules are extra locale entries applied on top of the built-in table
	// (and on top of RulesPath entries when both are given).
	Rules map[string]Rule
	// StatsMaxKeys bounds the per-locale fallback counters; once reached,
	// further locales are counted under a single overflow key. Defaults to 512.
	StatsMaxKeys int
}

// Registry resolves locale identifiers to plural rules. The table is built
// once by NewRegistry and read-only afterwards, so lookups need no locking.
// Matching is exact and case-sensitive: "ru" is listed, "ru-RU" is not and
// resolves to the default rule.
type Registry struct {
	rules       map[string]Rule
	defaultRule Rule
	stats       registryStats
}

// RegistryStats is a point-in-time copy of the registry's fallback counters.
type RegistryStats struct {
	// DefaultFallbacks counts resolutions per locale identifier that missed
	// the table and fell back to the default rule.
	DefaultFallbacks map[string]int
}

type registryStats struct {
	mu               sync.Mutex
	defaultFallbacks map[string]int
	maxKeys          int
}

func (s *registryStats) incrementFallback(localeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := localeID
	if key == "" {
		key = "unknown"
	}
	if s.maxKeys > 0 {
		if _, exists := s.defaultFallbacks[key]; !exists {
			if _, hasOverflow := s.defaultFallbacks[overflowStatKey]; hasOverflow {
				if len(s.defaultFallbacks) >= s.maxKeys {
					key = overflowStatKey
				}
			} else if len(s.defaultFallbacks) >= s.maxKeys-1 {
				key = overflowStatKey
			}
		}
	}
	s.defaultFallbacks[key]++
}

func (s *registryStats) snapshot() RegistryStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	fallbacks := make(map[string]int, len(s.defaultFallbacks))
	for k, v := range s.defaultFallbacks {
		fallbacks[k] = v
	}
	return RegistryStats{DefaultFallbacks: fallbacks}
}

func (s *registryStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultFallbacks = map[string]int{}
}

// builtinRules is the shipped locale table. Adding support for a new locale
// means adding one entry here (or shipping it via a rules file).
func builtinRules() map[string]Rule {
	return map[string]Rule{
		"fr":    ZeroOneSingular,
		"hu-HU": NoSingular,
		"tr-TR": NoSingular,
		"cs-CZ": CzechPlurality,
		"pl-PL": PolishPlurality,
		"ro":    RomanianPlurality,
		"ru":    CyrillicPlurality,
		"uk":    CyrillicPlurality,
	}
}

// NewRegistry builds a registry from the built-in table plus any entries from
// cfg. The only failure mode is a rules file that cannot be read or parsed.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.StatsMaxKeys <= 0 {
		cfg.StatsMaxKeys = 512
	}

	rules := builtinRules()
	defaultRule := OneSingular

	if cfg.RulesPath != "" {
		fileRules, fileDefault, err := LoadRulesFile(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		for localeID, rule := range fileRules {
			rules[localeID] = rule
		}
		if fileDefault != nil {
			defaultRule = *fileDefault
		}
	}
	for localeID, rule := range cfg.Rules {
		if localeID == "" {
			return nil, fmt.Errorf("locale identifier is required for rule %s", rule)
		}
		rules[localeID] = rule
	}

	return &Registry{
		rules:       rules,
		defaultRule: defaultRule,
		stats: registryStats{
			defaultFallbacks: map[string]int{},
			maxKeys:          cfg.StatsMaxKeys,
		},
	}, nil
}

// Resolve returns the plural rule for localeID. It never fails: identifiers
// missing from the table (unknown codes, unlisted dialects, the empty string)
// resolve to the default rule.
func (r *Registry) Resolve(localeID string) Rule {
	if rule, found := r.rules[localeID]; found {
		return rule
	}
	r.stats.incrementFallback(localeID)
	return r.defaultRule
}

// DefaultRule returns the rule unknown locales resolve to.
func (r *Registry) DefaultRule() Rule {
	return r.defaultRule
}

// Locales returns the locale identifiers present in the table.
func (r *Registry) Locales() []string {
	locales := make([]string, 0, len(r.rules))
	for localeID := range r.rules {
		locales = append(locales, localeID)
	}
	return locales
}

// RuleFor reports the table entry for localeID, without fallback.
func (r *Registry) RuleFor(localeID string) (Rule, bool) {
	rule, found := r.rules[localeID]
	return rule, found
}

// SnapshotStats returns a copy of the fallback counters.
func (r *Registry) SnapshotStats() RegistryStats {
	return r.stats.snapshot()
}

// ResetStats clears the fallback counters.
func (r *Registry) ResetStats() {
	r.stats.reset()
}

var (
	sharedRegistry     *Registry
	sharedRegistryOnce sync.Once
)

// Resolve returns the plural rule for localeID from the shared built-in
// registry. The registry is built on first use; after that, calls only read
// the immutable table and are safe for unlimited concurrent callers.
func Resolve(localeID string) Rule {
	sharedRegistryOnce.Do(func() {
		// Zero config cannot fail: no rules file is read.
		sharedRegistry, _ = NewRegistry(Config{})
	})
	return sharedRegistry.Resolve(localeID)
}
