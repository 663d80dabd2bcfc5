// Package cli provides the command-line interface for infix.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mattn/infix"
	"github.com/mattn/infix/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

var errorFmt = color.New(color.FgRed).SprintFunc()

type options struct {
	cfgFile string
	file    string
	tokens  bool
}

// app carries everything a command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	ev     *infix.Evaluator
	logger zerolog.Logger
	opts   *options
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
		With().Timestamp().Logger().
		Level(cfg.Level())
	if cfg.File != "" {
		logger.Debug().Str("file", cfg.File).Msg("loaded config")
	}

	return &app{
		cfg:    cfg,
		ev:     infix.New(infix.WithLogger(logger)),
		logger: logger,
		opts:   opts,
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// NewRootCmd creates the infix command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "infix [expression...]",
		Short: "Evaluate integer infix expressions",
		Long: `infix evaluates expressions made of non-negative integers and the
operators + - * / with the usual precedence.

With arguments, they are joined and evaluated as one expression. With --file,
or when stdin is not a terminal, every non-blank line is evaluated. Otherwise
an interactive prompt is started.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.run(args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: ./infix.yaml)")
	flags.StringVarP(&opts.file, "file", "f", "", "evaluate every line of `path`")
	flags.BoolVar(&opts.tokens, "tokens", false, "print the token stream to stderr before evaluating")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("prompt", config.DefaultPrompt, "interactive prompt")
	flags.String("history-file", "", "interactive history file")
	flags.StringP("format", "o", config.FormatPlain, "batch output format (plain|table)")
	flags.IntP("jobs", "j", 0, "concurrent evaluations in batch mode (0 = number of CPUs)")
	flags.Bool("color", true, "colorize errors")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatPlain, config.FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) run(args []string) error {
	if a.opts.file != "" {
		f, err := os.Open(a.opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		return a.batch(f)
	}
	if len(args) > 0 {
		return a.evalOne(strings.Join(args, " "))
	}
	if isTerminal(a.in) {
		return a.repl()
	}
	return a.batch(a.in)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) evalOne(expr string) error {
	a.printTokens(expr)
	v, err := a.ev.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *app) printTokens(expr string) {
	if !a.opts.tokens {
		return
	}
	tokens, err := infix.Tokenize(expr)
	if err != nil {
		fmt.Fprintf(a.errOut, "tokens: %v\n", err)
		return
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	fmt.Fprintf(a.errOut, "tokens: [%s]\n", strings.Join(parts, ", "))
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errBatchFailed) {
		fmt.Fprintln(cmd.ErrOrStderr(), errorFmt("Error: "+err.Error()))
	}
	return err
}
