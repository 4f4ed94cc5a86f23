package outcome

import (
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// UnwrappedFailureError is the panic payload of Unwrap and Expect when
// called on a failed Outcome. Failure carries the raw failure payload;
// Message is empty for Unwrap and caller-supplied for Expect.
type UnwrappedFailureError[E any] struct {
	Failure E
	Message string
}

func (e UnwrappedFailureError[E]) Error() string {
	if e.Message == "" {
		return "unwrap of a failed Outcome: " + describe(e.Failure)
	}
	return e.Message + ": " + describe(e.Failure)
}

// UnwrappedSuccessError is the panic payload of UnwrapErr when called on a
// successful Outcome. It carries the success payload.
type UnwrappedSuccessError[T any] struct {
	Value T
}

func (e UnwrappedSuccessError[T]) Error() string {
	return "unwrap of the failure side of a successful Outcome: " + describe(e.Value)
}

// describe renders an arbitrary payload for panic messages. It must never
// fail itself: nil payloads (typed-nil included) become a placeholder, a
// payload whose own rendering method panics falls back to spew's deep
// formatting, which handles any value.
func describe(v any) string {
	if isNil(v) {
		return "<nil>"
	}
	switch x := v.(type) {
	case string:
		return x
	case error:
		return render(x.Error, v)
	case fmt.Stringer:
		return render(x.String, v)
	default:
		return spew.Sprintf("%#v", x)
	}
}

func render(ownFormat func() string, v any) (s string) {
	defer func() {
		if recover() != nil {
			s = spew.Sprintf("%#v", v)
		}
	}()
	return ownFormat()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
