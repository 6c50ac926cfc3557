package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/backmassage/tifconvert/internal/check"
	"github.com/backmassage/tifconvert/internal/config"
	"github.com/backmassage/tifconvert/internal/display"
	"github.com/backmassage/tifconvert/internal/formats"
	"github.com/backmassage/tifconvert/internal/logging"
	"github.com/backmassage/tifconvert/internal/pipeline"
)

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	var showVersion bool

	cmd := &cobra.Command{
		Use:           "tifconvert <input-dir> [output-dir]",
		Short:         "Convert TIF/TIFF files to PNG, JPEG, WebP and AVIF",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "tifconvert %s (%s)\n", version, commit)
			return nil
		}
		if len(args) == 0 && !cfg.CheckOnly {
			printUsage(cmd.OutOrStdout())
			return &exitError{code: 1}
		}
		if len(args) > 2 {
			args = args[:2]
		}
		flags.Apply(&cfg)
		cfg.SetPaths(args)
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.RunID = uuid.NewString()
		return execute(cmd, &cfg)
	}
	return cmd
}

// execute runs the selected mode once config is complete. Per-file failures
// do not change the exit status.
func execute(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()
	log.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	display.PrintBanner(cmd.OutOrStdout())
	log.Debug(cfg.Verbose, "tifconvert %s (%s), run %s", version, commit, cfg.RunID)

	switch {
	case cfg.CheckOnly:
		if !check.RunCheck(log) {
			return &exitError{code: 1}
		}
		return nil
	case cfg.AnalyzeOnly:
		if err := pipeline.Analyze(cfg, log); err != nil {
			log.Error("%v", err)
			return &exitError{code: 1}
		}
		return nil
	}

	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Blank()
	if _, err := pipeline.Run(cfg, log); err != nil {
		log.Error("%v", err)
		return &exitError{code: 1}
	}
	return nil
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("Usage: tifconvert <input-dir> [output-dir] [flags]\n\n")
	b.WriteString("Converts all TIF/TIFF files to:\n")
	for _, s := range formats.All() {
		fmt.Fprintf(&b, "  %-12s %s\n", s.Dir()+"/", s.Description)
	}
	b.WriteString("\nOutput defaults to <input-dir>, or specify [output-dir].\n")
	b.WriteString("Original files are NEVER modified or removed.\n")
	b.WriteString("Run with --help for all flags.\n")
	_, _ = io.WriteString(w, b.String())
}
