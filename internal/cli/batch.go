package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/sync/errgroup"

	"github.com/mattn/infix/internal/config"
)

var errBatchFailed = errors.New("one or more expressions failed")

type result struct {
	line  int
	expr  string
	value int64
	err   error
}

// readExprs returns the non-blank lines of r that are not '#' comments.
func readExprs(r io.Reader) ([]result, error) {
	var exprs []result
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, result{line: n, expr: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}
	return exprs, nil
}

func (a *app) batch(r io.Reader) error {
	results, err := readExprs(r)
	if err != nil {
		return err
	}

	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	a.logger.Debug().Int("expressions", len(results)).Int("jobs", jobs).Msg("batch start")

	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range results {
		res := &results[i]
		a.printTokens(res.expr)
		g.Go(func() error {
			res.value, res.err = a.ev.Evaluate(res.expr)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
		}
	}

	switch a.cfg.Format {
	case config.FormatTable:
		renderTable(a.out, results)
	default:
		renderPlain(a.out, results)
	}

	if failed > 0 {
		a.logger.Warn().Int("failed", failed).Int("total", len(results)).Msg("batch finished with errors")
		return fmt.Errorf("%w: %d of %d", errBatchFailed, failed, len(results))
	}
	return nil
}

func renderPlain(w io.Writer, results []result) {
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(w, "%s: %s\n", res.expr, errorFmt(res.err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s = %d\n", res.expr, res.value)
	}
}

func renderTable(w io.Writer, results []result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Expression", "Result"})
	for _, res := range results {
		if res.err != nil {
			t.AppendRow(table.Row{res.line, res.expr, errorFmt(res.err.Error())})
			continue
		}
		t.AppendRow(table.Row{res.line, res.expr, res.value})
	}
	t.Render()
}
