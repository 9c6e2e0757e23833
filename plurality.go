// Package plurality selects the grammatical plural category ("one", "few",
// "many", "other") for a count in a given locale, so a localization layer can
// pick the correctly inflected string variant. Categories render externally
// as key suffixes ("_one", "_few", "_many", "_other").
package plurality

import "fmt"

// Category is the grammatical plural bucket a count falls into.
type Category int

const (
	One Category = iota
	Few
	Many
	Other
)

// String returns the symbolic category name ("one", "few", "many", "other").
func (c Category) String() string {
	switch c {
	case One:
		return "one"
	case Few:
		return "few"
	case Many:
		return "many"
	default:
		return "other"
	}
}

// Suffix returns the category encoded as a translation-key suffix, e.g. "_few".
// The localization layer appends it to a base key to select the inflected variant.
func (c Category) Suffix() string {
	switch c {
	case One:
		return "_one"
	case Few:
		return "_few"
	case Many:
		return "_many"
	default:
		return "_other"
	}
}

// Rule is a plural-selection rule, one value per grammar family. Rules are
// pure values with no state; a Rule may be shared freely across goroutines.
type Rule int

const (
	// OneSingular is the English-like default: 1 is singular, everything else plural.
	OneSingular Rule = iota
	// ZeroOneSingular treats both 0 and 1 as singular (e.g. French).
	ZeroOneSingular
	// NoSingular has no singular form at all (e.g. Hungarian, Turkish).
	NoSingular
	// CyrillicPlurality covers Russian, Ukrainian and similar languages:
	// one = 1, 21, 31...; few = 2-4, 22-24...; many = 0, 5-20, 25-30...
	CyrillicPlurality
	// CzechPlurality covers Czech and Slovak: one = 1; few = 2-4.
	CzechPlurality
	// PolishPlurality: one = 1; few = 2-4, 22-24...; many = 0, 5-21, 25-31...
	PolishPlurality
	// RomanianPlurality covers Romanian and Moldavian: one = 1; few = 0, 2-19, 101-119...
	RomanianPlurality
)

var ruleNames = map[Rule]string{
	OneSingular:       "one_singular",
	ZeroOneSingular:   "zero_one_singular",
	NoSingular:        "no_singular",
	CyrillicPlurality: "cyrillic",
	CzechPlurality:    "czech",
	PolishPlurality:   "polish",
	RomanianPlurality: "romanian",
}

// String returns the rule name as used in rules files and the CLI.
func (r Rule) String() string {
	if name, found := ruleNames[r]; found {
		return name
	}
	return "one_singular"
}

// ParseRule maps a rule name (e.g. "cyrillic") back to its Rule value.
func ParseRule(name string) (Rule, error) {
	for rule, ruleName := range ruleNames {
		if ruleName == name {
			return rule, nil
		}
	}
	return OneSingular, fmt.Errorf("unknown plural rule %q", name)
}

// Classify returns the plural category for count n. It is total: every rule
// returns exactly one category for every non-negative n, with Other as the
// universal fallback. Negative counts are a caller error; validate upstream.
func (r Rule) Classify(n int) Category {
	switch r {
	case ZeroOneSingular:
		if n == 0 || n == 1 {
			return One
		}
		return Other
	case NoSingular:
		return Other
	case CyrillicPlurality:
		return classifyCyrillic(n)
	case CzechPlurality:
		if n == 1 {
			return One
		}
		if n >= 2 && n <= 4 {
			return Few
		}
		return Other
	case PolishPlurality:
		return classifyPolish(n)
	case RomanianPlurality:
		if n == 1 {
			return One
		}
		if n == 0 || (n%100 >= 1 && n%100 <= 19) {
			return Few
		}
		return Other
	default:
		if n == 1 {
			return One
		}
		return Other
	}
}

// Suffix is shorthand for Classify(n).Suffix().
func (r Rule) Suffix(n int) string {
	return r.Classify(n).Suffix()
}

func classifyCyrillic(n int) Category {
	n10 := n % 10
	n100 := n % 100
	if n10 == 1 && n100 != 11 {
		return One
	}
	if n10 >= 2 && n10 <= 4 && !(n100 >= 12 && n100 <= 14) {
		return Few
	}
	if n10 == 0 || (n10 >= 5 && n10 <= 9) || (n100 >= 11 && n100 <= 14) {
		return Many
	}
	return Other
}

func classifyPolish(n int) Category {
	if n == 1 {
		return One
	}
	n10 := n % 10
	n100 := n % 100
	if n10 >= 2 && n10 <= 4 && !(n100 >= 12 && n100 <= 14) {
		return Few
	}
	if n10 == 0 || n10 == 1 || (n10 >= 5 && n10 <= 9) || (n100 >= 12 && n100 <= 14) {
		return Many
	}
	return Other
}
