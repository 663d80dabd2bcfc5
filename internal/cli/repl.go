package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

func (a *app) repl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          a.cfg.Prompt,
		HistoryFile:     a.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(".help"),
			readline.PcItem(".tokens"),
			readline.PcItem(".quit"),
			readline.PcItem(".exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	return a.loop(rl)
}

func (a *app) loop(rl lineReader) error {
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			if a.dotCommand(line) {
				return nil
			}
			continue
		}

		a.printTokens(line)
		v, err := a.ev.Evaluate(line)
		if err != nil {
			fmt.Fprintln(a.errOut, errorFmt(err.Error()))
			continue
		}
		fmt.Fprintln(a.out, v)
	}
}

// dotCommand handles a REPL command and reports whether the REPL should exit.
func (a *app) dotCommand(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true
	case ".help":
		fmt.Fprint(a.out, `
Commands:
  .help           Show this help message
  .tokens         Toggle printing of the token stream
  .quit / .exit   Exit

Expressions use non-negative integers and + - * /.
`)
	case ".tokens":
		a.opts.tokens = !a.opts.tokens
		fmt.Fprintf(a.out, "tokens: %t\n", a.opts.tokens)
	default:
		fmt.Fprintf(a.errOut, "Unknown command: %s (type .help for commands)\n", parts[0])
	}
	return false
}
