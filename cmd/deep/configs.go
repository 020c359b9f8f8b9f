package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/deep"
	"github.com/signadot/tony-format/deep/codec"
	"github.com/signadot/tony-format/deep/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color diff output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat is the format selected by -j or -y, if any.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) decOpts(path string) []codec.DecodeOption {
	fmat := format.FromPath(path)
	if f, ok := cfg.flagFormat(); ok {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []codec.DecodeOption{codec.DecodeFormat(fmat)}
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.YAMLFormat
	if f, ok := cfg.flagFormat(); ok {
		fmat = f
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts() []codec.EncodeOption {
	return []codec.EncodeOption{codec.EncodeFormat(cfg.outFormat())}
}

// colors reports whether to color output written to w: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type MergeConfig struct {
	*MainConfig

	ReplaceArrays bool   `cli:"name=replaceArrays desc='replace sequences instead of concatenating them'"`
	ReplaceSets   bool   `cli:"name=replaceSets desc='replace sets instead of taking their union'"`
	RFC7386       bool   `cli:"name=rfc7386 desc='merge with JSON merge patch semantics'"`
	At            string `cli:"name=at desc='expression selecting the value of each document to merge'"`

	Merge *cli.Command
}

func (cfg *MergeConfig) mergeOpts() []deep.MergeOption {
	return []deep.MergeOption{
		deep.MergeArrays(!cfg.ReplaceArrays),
		deep.MergeSets(!cfg.ReplaceSets),
	}
}

type EqualConfig struct {
	*MainConfig

	Diff bool   `cli:"name=d desc='print a line diff when the documents differ'"`
	At   string `cli:"name=at desc='expression selecting the value of each document to compare'"`

	Equal *cli.Command
}

type ViewConfig struct {
	*MainConfig

	At string `cli:"name=at desc='expression selecting the value of each document to view'"`

	View *cli.Command
}
