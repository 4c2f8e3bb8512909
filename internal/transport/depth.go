package transport

import (
	"fmt"
	"strings"

	qerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ValidateDepth reports every field nested deeper than maxDepth. Top-level
// fields sit at depth 0 and fragments add no depth of their own.
// Introspection fields are not descended into. A document that does not
// parse yields no errors so the executor can report the syntax error itself.
func ValidateDepth(query string, maxDepth int) []*qerrors.QueryError {
	if maxDepth <= 0 {
		return nil
	}

	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return nil
	}

	var errs []*qerrors.QueryError
	for _, op := range doc.Operations {
		w := depthWalker{
			fragments: doc.Fragments,
			maxDepth:  maxDepth,
			opName:    op.Name,
			visiting:  map[string]bool{},
		}
		w.selections(op.SelectionSet, 0)
		errs = append(errs, w.errs...)
	}
	return errs
}

type depthWalker struct {
	fragments ast.FragmentDefinitionList
	maxDepth  int
	opName    string
	visiting  map[string]bool
	errs      []*qerrors.QueryError
}

func (w *depthWalker) selections(set ast.SelectionSet, depth int) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			w.field(s, depth)
		case *ast.InlineFragment:
			w.selections(s.SelectionSet, depth)
		case *ast.FragmentSpread:
			def := w.fragments.ForName(s.Name)
			if def == nil || w.visiting[s.Name] {
				continue
			}
			w.visiting[s.Name] = true
			w.selections(def.SelectionSet, depth)
			delete(w.visiting, s.Name)
		}
	}
}

func (w *depthWalker) field(f *ast.Field, depth int) {
	if depth > w.maxDepth {
		w.errs = append(w.errs, w.tooDeep(f.Position))
		return
	}
	if !strings.HasPrefix(f.Name, "__") && len(f.SelectionSet) > 0 {
		w.selections(f.SelectionSet, depth+1)
	}
}

func (w *depthWalker) tooDeep(pos *ast.Position) *qerrors.QueryError {
	err := &qerrors.QueryError{
		Message: fmt.Sprintf("'%s' exceeds maximum operation depth of %d", w.opName, w.maxDepth),
	}
	if pos != nil {
		err.Locations = []qerrors.Location{{Line: pos.Line, Column: pos.Column}}
	}
	return err
}
