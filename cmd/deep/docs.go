package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/deep/codec"
	"github.com/signadot/tony-format/deep/debug"
)

// readDocs decodes every document in the file at path, "-" being standard
// input, and selects the value at expression at in each.
func readDocs(cfg *MainConfig, cc *cli.Context, path, at string) ([]any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	docs, err := codec.DecodeReader(r, cfg.decOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	if debug.CLI() {
		debug.Logf("decoded %d documents from %s\n", len(docs), path)
	}
	for i, doc := range docs {
		docs[i], err = selectAt(doc, at)
		if err != nil {
			return nil, fmt.Errorf("%s document %d: %w", path, i, err)
		}
	}
	return docs, nil
}

func readAll(cfg *MainConfig, cc *cli.Context, paths []string, at string) ([]any, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var res []any
	for _, p := range paths {
		docs, err := readDocs(cfg, cc, p, at)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

// writeDocs encodes docs to w, separating YAML documents with "---".
func writeDocs(cfg *MainConfig, w io.Writer, docs []any) error {
	opts := cfg.encOpts()
	yaml := cfg.outFormat().IsYAML()
	for i, doc := range docs {
		if i > 0 && yaml {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := codec.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
