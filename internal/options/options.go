// Package options implements the functional options accepted by
// codec.NewEncoder and payload.Pack.
//
// Options are values: one slice can configure any number of encoders.
// A nil option is ignored so callers can build option lists conditionally:
//
//	opts := []codec.EncoderOption{cyclicOpt} // cyclicOpt may be nil
package options

import "fmt"

// Option configures a *Encoder, a *payload.Config, or any other T.
type Option[T any] interface {
	apply(T) error
}

// Func is the only Option implementation.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a setter that validates its argument, such as a compression type.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps a setter that accepts every argument, such as a flag.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply runs opts on target in order and stops at the first failure.
// Options before the failing one keep their effect. The returned error
// names the failing option's position and wraps its cause.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}

// Build applies opts to the defaults and returns them, or the zero T on error.
func Build[T any](defaults T, opts ...Option[T]) (T, error) {
	if err := Apply(defaults, opts...); err != nil {
		var zero T
		return zero, err
	}

	return defaults, nil
}
