package plurality

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// rulesFile is the on-disk shape of a rules file:
//
//	default: one_singular
//	locales:
//	  fr: zero_one_singular
//	  sr: cyrillic
//
// Rule names are the Rule.String values. "default" is optional.
type rulesFile struct {
	Default string            `yaml:"default"`
	Locales map[string]string `yaml:"locales"`
}

// LoadRulesFile reads a YAML rules file and returns its locale entries plus
// the default rule, if the file sets one. Entries are exact locale
// identifiers; no normalization is applied.
func LoadRulesFile(path string) (map[string]Rule, *Rule, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rules file: %v", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal rules file: %v", err)
	}

	rules := make(map[string]Rule, len(file.Locales))
	for localeID, name := range file.Locales {
		if localeID == "" {
			return nil, nil, fmt.Errorf("invalid rules file %s: locale identifier is required", path)
		}
		rule, err := ParseRule(name)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid rules file %s: locale %s: %v", path, localeID, err)
		}
		rules[localeID] = rule
	}

	var defaultRule *Rule
	if file.Default != "" {
		rule, err := ParseRule(file.Default)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid rules file %s: default: %v", path, err)
		}
		defaultRule = &rule
	}

	return rules, defaultRule, nil
}
