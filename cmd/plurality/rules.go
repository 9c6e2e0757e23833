package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/loopcontext/plurality"
)

// rulesConfig holds flags for the rules command.
type rulesConfig struct {
	rulesPath string
}

func usageRules() {
	fmt.Fprintf(os.Stderr, `usage: plurality rules [options]

Rules prints the effective locale table (built-in entries plus any rules file)
and the default rule unknown locales resolve to.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseRulesFlags(args []string) (*rulesConfig, error) {
	fs := flag.NewFlagSet("rules", flag.ExitOnError)
	fs.Usage = usageRules
	var cfg rulesConfig
	fs.StringVar(&cfg.rulesPath, "rules", "", "Optional YAML rules file extending the built-in locale table.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runRules(cfg *rulesConfig) error {
	registry, err := plurality.NewRegistry(plurality.Config{RulesPath: cfg.rulesPath})
	if err != nil {
		return err
	}
	locales := registry.Locales()
	sort.Strings(locales)
	for _, localeID := range locales {
		rule, _ := registry.RuleFor(localeID)
		fmt.Printf("%s\t%s\n", localeID, rule)
	}
	fmt.Printf("default\t%s\n", registry.DefaultRule())
	return nil
}
