package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/loopcontext/plurality"
)

// classifyConfig holds flags and args for the classify command.
type classifyConfig struct {
	locale    string
	rulesPath string
	counts    []int
}

func usageClassify() {
	fmt.Fprintf(os.Stderr, `usage: plurality classify [options] <count> [count ...]

Classify resolves the plural rule for a locale and prints, for each count, the
plural category and the key suffix a localization layer would append to its
base translation key. Unknown locales use the default (English-like) rule.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseClassifyFlags(args []string) (*classifyConfig, error) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	fs.Usage = usageClassify
	var cfg classifyConfig
	fs.StringVar(&cfg.locale, "locale", "en", "Locale identifier to resolve (exact match, e.g. ru, pl-PL).")
	fs.StringVar(&cfg.rulesPath, "rules", "", "Optional YAML rules file extending the built-in locale table.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, arg := range fs.Args() {
		count, err := strconv.Atoi(arg)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("classify: count must be a non-negative integer, got %q", arg)
		}
		cfg.counts = append(cfg.counts, count)
	}
	return &cfg, nil
}

func runClassify(cfg *classifyConfig) error {
	if len(cfg.counts) == 0 {
		return fmt.Errorf("classify: at least one count is required")
	}
	registry, err := plurality.NewRegistry(plurality.Config{RulesPath: cfg.rulesPath})
	if err != nil {
		return err
	}
	rule := registry.Resolve(cfg.locale)
	fmt.Printf("locale %s uses rule %s\n", cfg.locale, rule)
	for _, count := range cfg.counts {
		category := rule.Classify(count)
		fmt.Printf("%d\t%s\t%s\n", count, category, category.Suffix())
	}
	return nil
}
