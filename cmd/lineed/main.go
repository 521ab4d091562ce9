// Command lineed is a line-addressed text editor driven by a compact
// command stream on stdin: CHANGE, DELETE, PRINT, UNDO, REDO, QUIT.
package main

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linedit/lineed/internal/config"
	"github.com/linedit/lineed/internal/diag"
	"github.com/linedit/lineed/internal/dispatch"
	"github.com/linedit/lineed/internal/parser"
	"github.com/linedit/lineed/internal/repl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	reporter := diag.New(stderr)

	fs := flag.NewFlagSet("lineed", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flagConfig := fs.StringP("config", "c", "", "use specified config file")
	flagInteractive := fs.BoolP("interactive", "i", false, "force the liner-backed interactive prompt")
	flagMaxLineBytes := fs.Int("max-line-bytes", 0, "override the payload line size cap (0 = use config/default)")
	flagHistoryFile := fs.String("history-file", "", "override the interactive history file path")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		reporter.Errorf("%v", err)
		return 2
	}

	workDir, err := os.Getwd()
	if err != nil {
		reporter.Fatalf("%v", err)
		return 1
	}

	cfg, err := config.Load(workDir, *flagConfig)
	if err != nil {
		reporter.Fatalf("%v", err)
		return 1
	}

	if fs.Changed("max-line-bytes") && *flagMaxLineBytes != 0 {
		cfg.MaxLineBytes = *flagMaxLineBytes
	}
	if fs.Changed("history-file") {
		cfg.HistoryFile = *flagHistoryFile
	}
	if fs.Changed("interactive") {
		cfg.Interactive = *flagInteractive
	}

	var in io.Reader = stdin

	interactive := cfg.Interactive
	if f, ok := stdin.(*os.File); ok && !fs.Changed("interactive") && !cfg.Interactive {
		interactive = repl.IsTerminal(f)
	}

	if interactive {
		session := repl.Open(config.ExpandHome(cfg.HistoryFile))
		defer func() { _ = session.Close() }()
		in = session
	}

	p := parser.NewWithLimit(in, cfg.MaxLineBytes)
	d := dispatch.New(stdout)

	if err := d.Run(p); err != nil {
		reporter.Fatalf("%v", err)
		return 1
	}

	return 0
}
