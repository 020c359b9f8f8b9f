package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/tony-format/deep"
	"github.com/signadot/tony-format/deep/codec"
)

func equal(cfg *EqualConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equal.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equal requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readOne(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readOne(cfg, cc, args[1])
	if err != nil {
		return err
	}
	if deep.Equal(a, b) {
		return nil
	}
	if cfg.Diff {
		if err := writeDiff(cfg, cc.Out, a, b); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

// readOne reads a file as a single value: its only document, or the
// sequence of its documents.
func readOne(cfg *EqualConfig, cc *cli.Context, path string) (any, error) {
	docs, err := readDocs(cfg.MainConfig, cc, path, cfg.At)
	if err != nil {
		return nil, err
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	return docs, nil
}

func writeDiff(cfg *EqualConfig, w io.Writer, a, b any) error {
	opts := cfg.encOpts()
	da, err := codec.Marshal(a, opts...)
	if err != nil {
		return fmt.Errorf("error encoding first document: %w", err)
	}
	db, err := codec.Marshal(b, opts...)
	if err != nil {
		return fmt.Errorf("error encoding second document: %w", err)
	}
	_, err = io.WriteString(w, lineDiff(string(da), string(db), cfg.colors(w)))
	return err
}

// lineDiff renders the difference between a and b line by line, prefixing
// removed lines with "-", added lines with "+" and common lines with " ".
func lineDiff(a, b string, colors bool) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix, c := " ", (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", del
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if c != nil {
				line = c.Sprint(line)
			}
			buf.WriteString(line + "\n")
		}
	}
	return buf.String()
}
