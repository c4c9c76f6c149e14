package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	var (
		cfgname, verb, colors string
		input                 string
		trailing, verbose     bool
		tokens                bool
		depth                 int
	)
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.StringVar(&input, "in", "", "file to read expressions from, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&trailing, "allow-trailing", false, "ignore input after a complete expression")
	flag.IntVar(&depth, "depth", 0, "maximum nesting of parentheses and negations (0 for default, -1 for unlimited)")
	flag.StringVar(&colors, "color", "auto", "color errors: auto, always, or never")
	flag.BoolVar(&verbose, "v", false, "log each evaluation")
	flag.BoolVar(&tokens, "tokens", false, "print the tokens of each expression")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		logrus.Fatal(err)
	}
	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "allow-trailing":
			cfg.AllowTrailing = trailing
		case "depth":
			cfg.MaxDepth = depth
		case "color":
			cfg.Color = colors
		case "v":
			if verbose {
				cfg.LogLevel = "debug"
			}
		case "tokens":
			cfg.Tokens = tokens
		}
	})
	if err := cfg.validate(); err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	lvl, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(lvl)
	log.WithFields(logrus.Fields{
		"config":         cfgname,
		"allow_trailing": cfg.AllowTrailing,
		"max_depth":      cfg.MaxDepth,
	}).Debug("starting")

	r := newREPL(cfg, os.Stdout, log)
	ok := true
	for _, arg := range flag.Args() {
		ok = r.eval(arg, "") && ok
	}
	in, err := openInput(input, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in != nil {
		defer in.Close()
		r.interactive = in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
		if err := r.run(in); err != nil {
			log.WithField("in", input).Fatal(err)
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// openInput opens the input for the read loop: the named file, or standard
// input if the name is "-" or if it is empty and std is true. The result is
// nil if there is no input to read.
func openInput(name string, std bool) (*os.File, error) {
	switch {
	case name != "" && name != "-":
		return os.Open(name)
	case name == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
