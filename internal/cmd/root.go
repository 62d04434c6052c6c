// Package cmd implements the pickline command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// Exit codes:
//
//	0 = session ended; the selection, possibly empty, is on stdout
//	2 = configuration, I/O or terminal error
const (
	ExitSuccess = 0
	ExitError   = 2
)

// optsEnv holds default arguments, placed before the command line.
const optsEnv = "PICKLINE_OPTS"

// Streams are the process streams a command runs against. Records are read
// from In and selected lines are written to Out; the picker itself draws on
// the terminal device.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process standard streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// pickerFlags holds the raw root command flags.
type pickerFlags struct {
	pageSize       string
	alphabet       string
	delimiter      string
	cols           string
	outputCols     string
	selectionCol   int
	selectionRegex string
	configPath     string
	tty            string
}

func newRootCmd(s Streams) *cobra.Command {
	var f pickerFlags

	root := &cobra.Command{
		Use:   "pickline",
		Short: "pick lines from stdin with jump hints",
		Long: `pickline - pick lines from stdin with jump hints
  - reads records from stdin, one per line
  - draws on the terminal and prints the selected lines to stdout
  - f + hint code jumps straight to a line`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPicker(cmd, s, &f)
		},
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	fl := root.Flags()
	fl.StringVar(&f.pageSize, "page-size", "", `rows per page, a number or "auto" (default from config, "auto")`)
	fl.StringVarP(&f.alphabet, "alphabet", "a", "", `hint alphabet (default from config, "asdfhjkl")`)
	fl.StringVarP(&f.delimiter, "delimiter", "d", "", "split lines into columns on this delimiter")
	fl.StringVarP(&f.cols, "cols", "c", "", "columns to display, e.g. 0,2..4 (requires --delimiter)")
	fl.StringVar(&f.outputCols, "output-cols", "", "columns to print, joined by the delimiter (requires --delimiter)")
	fl.IntVar(&f.selectionCol, "selection-col", 0, "place the cursor on the first line whose column matches --selection-regex (requires --delimiter)")
	fl.StringVar(&f.selectionRegex, "selection-regex", "", `regex for --selection-col (default "\S")`)
	fl.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pickline/config.yaml)")
	fl.StringVar(&f.tty, "tty", "", "terminal device to draw on (default /dev/tty)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute runs pickline with args and returns the process exit code.
func Execute(args []string, s Streams) int {
	args, err := withDefaultOpts(args, os.Getenv(optsEnv))
	if err != nil {
		fmt.Fprintf(s.Err, "%spickline:%s %v\n", colorRed, colorReset, err)
		return ExitError
	}

	root := newRootCmd(s)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(s.Err, "%spickline:%s %v\n", colorRed, colorReset, err)
		return ExitError
	}
	return ExitSuccess
}

// withDefaultOpts prepends the shell-split value of PICKLINE_OPTS to args.
// Subcommands take none of the picker flags, so they are left alone.
func withDefaultOpts(args []string, opts string) ([]string, error) {
	if opts == "" || (len(args) > 0 && isSubcommand(args[0])) {
		return args, nil
	}
	extra, err := shlex.Split(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", optsEnv, err)
	}
	return append(extra, args...), nil
}

func isSubcommand(arg string) bool {
	switch arg {
	case "version", "config", "help", "completion":
		return true
	}
	return false
}
