package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	var err error
	switch sub {
	case "classify":
		cfg, e := parseClassifyFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runClassify(cfg)
	case "rules":
		cfg, e := parseRulesFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runRules(cfg)
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "plurality: unknown subcommand %q\n", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "plurality: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `plurality - plural category selection for localization keys

usage: plurality <command> [options] [args]

commands:
  classify   Print the plural category and key suffix for each count in a locale.
  rules      Print the effective locale table.

Use 'plurality classify -h' or 'plurality rules -h' for command-specific flags.
`)
}
