package main

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// selectAt evaluates at against an environment holding the document as
// doc, as in -at 'doc.spec.containers[0]'. An empty expression selects the
// whole document.
func selectAt(doc any, at string) (any, error) {
	if at == "" {
		return doc, nil
	}
	res, err := expr.Eval(at, map[string]any{"doc": doc})
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", at, err)
	}
	return res, nil
}
