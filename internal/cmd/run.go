package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runger/pickline/internal/config"
	"github.com/runger/pickline/internal/input"
	pllog "github.com/runger/pickline/internal/log"
	"github.com/runger/pickline/internal/options"
	"github.com/runger/pickline/internal/picker"
	"github.com/runger/pickline/internal/record"
	"github.com/runger/pickline/internal/term"
)

// runPicker reads the records, runs one interactive session on the terminal
// and prints the selection.
func runPicker(cmd *cobra.Command, s Streams, f *pickerFlags) error {
	paths := configPaths()
	configPath := f.configPath
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}

	opts, err := options.Build(options.Flags{
		PageSize:       f.pageSize,
		Alphabet:       f.alphabet,
		Delimiter:      f.delimiter,
		Columns:        f.cols,
		OutputColumns:  f.outputCols,
		SelectionCol:   f.selectionCol,
		HasSelection:   cmd.Flags().Changed("selection-col"),
		SelectionRegex: f.selectionRegex,
	}, cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := pllog.Open(cfg.Log.Level, cfg.Log.File, paths.LogFile())
	if err != nil {
		return err
	}
	defer closeLog()

	lines, err := input.Read(s.In)
	if err != nil {
		pllog.LogSessionError(logger, "input", err)
		return err
	}

	if err := term.CheckTERM(); err != nil {
		pllog.LogSessionError(logger, "terminal", err)
		return err
	}
	tty, err := term.OpenTTY(f.tty)
	if err != nil {
		pllog.LogSessionError(logger, "terminal", err)
		return err
	}
	defer tty.Close()

	_, height, _ := term.Size(tty)
	pageSize := options.ResolvePageSize(opts.PageSize, len(lines), height)

	pllog.LogSessionStart(logger, pllog.SessionInfo{
		Version:    Version,
		ConfigPath: configPath,
		Records:    len(lines),
		PageSize:   pageSize,
		Alphabet:   opts.Alphabet.String(),
		Delimiter:  opts.Delimiter,
		PID:        os.Getpid(),
	})

	engine := picker.NewEngine(record.NewStore(lines, opts.Delimiter), engineConfig(opts, pageSize), logger)
	model := picker.NewModel(engine, picker.ModelOptions{
		AutoPageSize: opts.PageSize.Auto,
		Renderer:     term.Renderer(tty),
	})

	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)
	final, err := p.Run()
	if err != nil {
		pllog.LogSessionError(logger, "ui", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(picker.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	return printResult(s, m, logger)
}

func engineConfig(opts *options.Options, pageSize int) picker.Config {
	cfg := picker.Config{
		PageSize: pageSize,
		Alphabet: opts.Alphabet,
		Display:  opts.DisplayColumns,
		Output:   opts.OutputColumns,
	}
	if opts.Seed != nil {
		cfg.Seed = &picker.Seed{Column: opts.Seed.Column, Pattern: opts.Seed.Pattern}
	}
	return cfg
}

func printResult(s Streams, m picker.Model, logger *slog.Logger) error {
	lines, ok := m.Result()
	pllog.LogSessionEnd(logger, len(lines), !ok)
	if !ok {
		return nil
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.Out, line); err != nil {
			return fmt.Errorf("failed to write selection: %w", err)
		}
	}
	return nil
}
