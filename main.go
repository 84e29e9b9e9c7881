package main

import (
	"flag"
	"os"

	"github.com/lollipopkit/kale/compiler"
	"github.com/lollipopkit/kale/config"
	"github.com/lollipopkit/kale/consts"
	"github.com/lollipopkit/kale/repl"
	"github.com/lollipopkit/kale/term"
	"github.com/lollipopkit/kale/view"
)

var (
	configPath = flag.String("config", config.Path(), "config file")
	debug      = flag.Bool("debug", false, "print parser traces")
	dumpAst    = flag.Bool("ast", false, "write the AST of FILE to FILE"+consts.AstExt)
	showTree   = flag.Bool("tree", false, "browse the AST of FILE")
)

func main() {
	flag.Usage = func() {
		term.Cyan("kale (v%s)", consts.VERSION)
		term.Info("usage: kale [flags] [FILE]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		term.Error("[config] %v", err)
		os.Exit(2)
	}
	consts.Debug = *debug || cfg.Debug

	args := flag.Args()
	if len(args) == 0 {
		if term.IsTerminal(os.Stdin) {
			repl.Repl(cfg)
			return
		}
		if err := repl.Stream(os.Stdin, term.Stdout, cfg.Precedence()); err != nil {
			term.Error("[stdin] %v", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(run(args[0], cfg))
}

func run(path string, cfg *config.Config) int {
	unit, err := compiler.ParseFile(path, cfg.Precedence())
	if err != nil {
		term.Error("[parse] can't read file: %v", err)
		return 1
	}

	switch {
	case *dumpAst:
		if err := writeAst(path, unit); err != nil {
			term.Error("[ast] %v", err)
			return 1
		}
	case *showTree:
		if err := view.Show(unit); err != nil {
			term.Error("[tree] %v", err)
			return 1
		}
	default:
		repl.Report(term.Stdout, unit)
	}

	if len(unit.Errs) > 0 {
		return 1
	}
	return 0
}

func writeAst(path string, unit *compiler.Unit) error {
	data, err := unit.Dump()
	if err != nil {
		return err
	}
	out := path + consts.AstExt
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	term.Suc("AST written to %s", out)
	return nil
}
