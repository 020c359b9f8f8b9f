package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/deep"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readAll(cfg.MainConfig, cc, args, cfg.At)
	if err != nil {
		return err
	}
	for i := range docs {
		docs[i] = deep.Clone(docs[i])
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs)
}
