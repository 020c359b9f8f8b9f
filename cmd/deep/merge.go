package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/deep"
	"github.com/signadot/tony-format/deep/codec"
	"github.com/signadot/tony-format/deep/debug"
	"github.com/signadot/tony-format/deep/format"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readAll(cfg.MainConfig, cc, args, cfg.At)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w: no documents to merge", cli.ErrUsage)
	}
	var res any
	if cfg.RFC7386 {
		res, err = mergePatch(docs)
		if err != nil {
			return err
		}
	} else {
		res = mergeDocs(deep.Default(), docs, cfg.mergeOpts()...)
	}
	return writeDocs(cfg.MainConfig, cc.Out, []any{res})
}

// mergeDocs merges docs into the first one, left to right.
func mergeDocs(e *deep.Engine, docs []any, opts ...deep.MergeOption) any {
	res := docs[0]
	for i, doc := range docs[1:] {
		if debug.CLI() {
			debug.Logf("merging document %d\n", i+1)
		}
		res = e.Merge(res, doc, opts...)
	}
	return res
}

// mergePatch applies docs[1:] in turn to docs[0] as JSON merge patches.
func mergePatch(docs []any) (any, error) {
	jOpts := []codec.EncodeOption{codec.EncodeFormat(format.JSONFormat), codec.EncodeIndent(0)}
	cur, err := codec.Marshal(docs[0], jOpts...)
	if err != nil {
		return nil, fmt.Errorf("error encoding document 0: %w", err)
	}
	for i, doc := range docs[1:] {
		patch, err := codec.Marshal(doc, jOpts...)
		if err != nil {
			return nil, fmt.Errorf("error encoding document %d: %w", i+1, err)
		}
		cur, err = jsonpatch.MergePatch(cur, patch)
		if err != nil {
			return nil, fmt.Errorf("error applying document %d: %w", i+1, err)
		}
	}
	res, err := codec.Decode(cur, codec.DecodeFormat(format.JSONFormat))
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("merge patch produced %d documents", len(res))
	}
	return res[0], nil
}
