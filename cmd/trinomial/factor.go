package main

import (
	"strings"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/internal/presentation/tui"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/aretw0/trinomial/pkg/runner"
	"github.com/spf13/cobra"
)

var factorCmd = &cobra.Command{
	Use:   "factor [trinomial...]",
	Short: "Explain the factorization of a trinomial",
	Long: `Prints the step-by-step explanation for a trinomial ax^2+bx+c.

Arguments are joined with spaces, so the expression may be quoted or not.
Without arguments, trinomials are read from stdin one per line until EOF
or a line containing "exit" or "quit".

Markdown output is rendered for the terminal when stdout is a TTY.
With --json every result is written as one JSON object per line, and stdin
lines may be JSON strings.`,
	Example: `  trinomial factor "2x^2+7x+3"
  trinomial factor --format markdown x^2 -5x +6
  echo "6x^2-31x+40" | trinomial factor
  printf '"x^2-5x+6"\n' | trinomial factor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		format, err := markup.ParseFormat(formatName)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		cache, closeCache, err := newCache(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeCache()

		eng := newEngine(cfg, logger, cache, logHooks(logger), trinomial.WithFormat(format))

		out := cmd.OutOrStdout()
		opts := []runner.Option{
			runner.WithInput(cmd.InOrStdin()),
			runner.WithOutput(out),
			runner.WithLogger(logger),
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			opts = append(opts, runner.WithJSON())
		} else if format == markup.FormatMarkdown && isTerminal(out) {
			render, err := tui.NewRenderer("", terminalWidth(out))
			if err != nil {
				logger.Warn("Terminal rendering disabled", "error", err)
			} else {
				opts = append(opts, runner.WithRenderer(render))
			}
		}

		if len(args) > 0 {
			return runner.NewRunner(opts...).Once(ctx, eng, strings.Join(args, " "))
		}

		if isTerminal(cmd.InOrStdin()) && !asJSON {
			opts = append(opts, runner.WithPrompt("> "))
		}
		count, err := runner.NewRunner(opts...).Run(ctx, eng)
		logger.Debug("Input exhausted", "count", count)
		return err
	},
}

func init() {
	rootCmd.AddCommand(factorCmd)
	factorCmd.Flags().StringP("format", "f", "html", "Output format: html or markdown")
	factorCmd.Flags().Bool("json", false, "Write one JSON result per input (JSON Lines)")
	// "x^2 -5x +6" must not be read as flags.
	factorCmd.Flags().SetInterspersed(false)
}
