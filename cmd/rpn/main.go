// Command rpn is an interactive Reverse Polish Notation calculator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"rpn/internal/config"
	"rpn/internal/repl"
	"rpn/internal/runtimeio"
)

const version = "0.1.0"

const usage = "usage: rpn [-config <file>] [-prompt <s>] [-max-depth <n>] [-no-color] [-v] [-verbosity <n>]\n       rpn version"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin *os.File) int {
	if len(args) > 0 && args[0] == "version" {
		fmt.Printf("rpn %s\n", version)
		return 0
	}

	fs := flag.NewFlagSet("rpn", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "settings file (YAML)")
	prompt := fs.String("prompt", repl.DefaultPrompt, "prompt shown before each line")
	maxDepth := fs.Int("max-depth", 0, "maximum number of stack values (0 = unlimited)")
	noColor := fs.Bool("no-color", false, "disable coloured errors")
	debug := fs.Bool("v", false, "log every token to stderr")
	verbosity := fs.Int("verbosity", 0, "log verbosity")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		fmt.Println(usage)
		return 2
	}

	level := *verbosity
	if *debug && level < 4 {
		level = 4
	}
	commonlog.Configure(level, nil)
	log := commonlog.GetLogger("rpn")

	var settings *config.Settings
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Println("config error:", err)
			return 1
		}
	}

	interactive := runtimeio.IsInteractive(stdin)
	opts := repl.Options{
		Prompt:      settings.PromptOr(repl.DefaultPrompt),
		Interactive: interactive,
		ShowHelp:    settings.ShowHelpOr(interactive),
		Color:       settings.ColorOr(true) && runtimeio.IsColorTerminal(os.Stdout),
		MaxDepth:    *maxDepth,
	}
	if settings != nil && !isFlagSet(fs, "max-depth") {
		opts.MaxDepth = settings.MaxDepth
	}
	if isFlagSet(fs, "prompt") {
		opts.Prompt = *prompt
	}
	if *noColor {
		opts.Color = false
	}
	if opts.MaxDepth < 0 {
		fmt.Println("flag error: -max-depth must be >= 0")
		return 2
	}
	log.Debugf("interactive=%t color=%t max-depth=%d", opts.Interactive, opts.Color, opts.MaxDepth)

	if err := repl.Start(stdin, os.Stdout, opts); err != nil {
		fmt.Println("read error:", err)
		return 1
	}
	return 0
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
