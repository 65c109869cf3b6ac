package core

import (
	"reflect"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
)

// IsNil reports whether n is nil or holds a nil pointer, such as the
// result of a failed constructor.
func IsNil(n ports.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func validateChild(child ports.Node) error {
	if IsNil(child) {
		return domain.InvalidArgument("invalid decorating child")
	}
	return nil
}

type validatable interface {
	Behavior
	Validate() error
}

// finish validates a freshly built node before it is handed out.
func finish[T validatable](n T) (T, error) {
	if err := n.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return n, nil
}
