package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/araignee/internal/dto"
	"github.com/aretw0/araignee/pkg/domain"
)

// ValidationError represents a single problem found in a tree definition.
type ValidationError struct {
	Path   string // Location of the node, e.g. root.children[1].child
	Reason string // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap makes every ValidationError match domain.ErrInvalidArgument.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidArgument }

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// ValidateTree checks the shape of a raw tree definition starting at root:
// every node is a mapping with a known kind, identifiers are unique and
// nested nodes sit under child, interrogator or children.
// Attribute values are left to the kind factories.
func ValidateTree(root any, known func(kind string) bool) error {
	w := &walker{known: known, seen: make(map[string]string)}
	if root == nil {
		w.fail("root", "missing root node")
	} else {
		w.visit("root", root)
	}

	if len(w.errs) > 0 {
		return &AggregateError{Errors: w.errs}
	}
	return nil
}

type walker struct {
	known func(string) bool
	seen  map[string]string
	errs  []error
}

func (w *walker) fail(path, format string, args ...any) {
	w.errs = append(w.errs, &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func (w *walker) visit(path string, raw any) {
	node, ok := raw.(map[string]any)
	if !ok {
		w.fail(path, "node must be a mapping, got %T", raw)
		return
	}

	switch kind := node["kind"].(type) {
	case nil:
		w.fail(path, "missing kind")
	case string:
		if !w.known(kind) {
			w.fail(path, "unknown kind %q", kind)
		}
	default:
		w.fail(path, "kind must be a string, got %T", kind)
	}

	if rawID, present := node["id"]; present {
		id, ok := rawID.(string)
		switch {
		case !ok:
			w.fail(path, "id must be a string, got %T", rawID)
		case id == "":
			w.fail(path, "id must not be empty")
		default:
			if first, dup := w.seen[id]; dup {
				w.fail(path, "duplicate id %q (first at %s)", id, first)
			} else {
				w.seen[id] = path
			}
		}
	}

	for _, key := range []string{dto.KeyInterrogator, dto.KeyChild} {
		if child, present := node[key]; present {
			w.visit(path+"."+key, child)
		}
	}

	if rawChildren, present := node[dto.KeyChildren]; present && rawChildren != nil {
		var children []any
		switch list := rawChildren.(type) {
		case []any:
			children = list
		case []map[string]any:
			for _, c := range list {
				children = append(children, c)
			}
		default:
			w.fail(path+"."+dto.KeyChildren, "children must be a list, got %T", rawChildren)
			return
		}
		for i, child := range children {
			w.visit(fmt.Sprintf("%s.%s[%d]", path, dto.KeyChildren, i), child)
		}
	}
}
