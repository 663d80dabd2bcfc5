// Package golden exposes the expression corpus under testdata/golden, embedded
// with statik. Each case is NAME.expr plus either NAME.out holding the
// expected value or NAME.err holding the expected error text.
package golden

import (
	"io"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/infix/internal/golden/statik"
)

//go:generate statik -src=../../testdata/golden -dest=. -f

type Case struct {
	Name    string
	Expr    string
	Want    string
	WantErr string
}

func Load() ([]Case, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(fis))
	for _, fi := range fis {
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files[fi.Name()] = string(b)
	}

	var cases []Case
	for name, body := range files {
		if path.Ext(name) != ".expr" {
			continue
		}
		base := strings.TrimSuffix(name, ".expr")
		cases = append(cases, Case{
			Name:    base,
			Expr:    strings.TrimRight(body, "\n"),
			Want:    strings.TrimSpace(files[base+".out"]),
			WantErr: strings.TrimSpace(files[base+".err"]),
		})
	}
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}
