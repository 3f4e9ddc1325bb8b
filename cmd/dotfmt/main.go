// Command dotfmt formats DOT graph description files.
//
// Run without a subcommand, it formats whatever DOT source is piped to stdin and writes the
// result to stdout, using the built-in layout conventions. The format, check, and version
// subcommands add config file resolution, glob-based file discovery, and Wasm plugin support.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/hashicorp/cli"
	"github.com/spf13/afero"

	"github.com/teleivo/fmtcore/internal/config"
	"github.com/teleivo/fmtcore/internal/version"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// subcommands are dispatched to hashicorp/cli; anything else, including no arguments at all, is
// treated as the legacy stdin-to-stdout pipe that scripts and editor integrations already use.
var subcommands = map[string]bool{"format": true, "check": true, "version": true}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	if len(args) > 1 && subcommands[args[1]] {
		return runCLI(args, r, w, wErr)
	}
	return runPipe(args, r, w, wErr)
}

func runCLI(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	ui := &cli.BasicUi{Reader: r, Writer: w, ErrorWriter: wErr}
	fs := afero.NewOsFs()

	app := cli.NewCLI("dotfmt", version.Version())
	app.Args = args[1:]
	app.Commands = map[string]cli.CommandFactory{
		"format":  func() (cli.Command, error) { return &FormatCommand{Meta{UI: ui, Fs: fs}}, nil },
		"check":   func() (cli.Command, error) { return &CheckCommand{Meta{UI: ui, Fs: fs}}, nil },
		"version": func() (cli.Command, error) { return &VersionCommand{Meta{UI: ui, Fs: fs}}, nil },
	}

	exitCode, err := app.Run()
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return fmt.Errorf("dotfmt %s failed", args[1])
	}
	return nil
}

// runPipe preserves dotfmt's original contract: format whatever is read from r and write it to w,
// honoring -cpuprofile and -memprofile for local performance investigation.
func runPipe(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet(progName(args), flag.ExitOnError)
	flags.SetOutput(wErr)
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	var src bytes.Buffer
	if _, err := io.Copy(&src, r); err != nil {
		return fmt.Errorf("reading input: %v", err)
	}

	out, err := formatSource(config.Default(), src.String())
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

func progName(args []string) string {
	if len(args) == 0 {
		return "dotfmt"
	}
	return args[0]
}
