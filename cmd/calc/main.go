// Command calc evaluates arithmetic expressions, one per line.
//
// With -e, it evaluates its argument and exits. Otherwise it runs an
// interactive prompt with history; an empty line or Ctrl+D ends the session.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/linecalc/linecalc"
)

const (
	historyFile = ".calc_history"
	prompt      = "> "
)

func main() {
	var (
		expr string
		long bool
	)
	flag.StringVar(&expr, "e", "", "evaluate a single expression and exit")
	flag.BoolVar(&long, "long", false, "print results with 10 fraction digits instead of 2")
	flag.Parse()

	frac := 2
	if long {
		frac = 10
	}

	if expr != "" {
		r, err := linecalc.EvalString(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(r.Format(frac))
		return
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		r, err := linecalc.EvalString(line)
		switch {
		case errors.Is(err, linecalc.ErrEmptyLine):
			return
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(r.Format(frac))
		ln.AppendHistory(line)
	}
}
