package util

// Option holds a value which may be absent, such as the result of an operation
// which is undefined for some inputs.
type Option[T any] struct {
	// Indicates whether value present
	some bool
	// The value itself
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// HasValue indicates whether or not this option contains an actual value.
func (o Option[T]) HasValue() bool {
	return o.some
}

// Unwrap returns the value contained, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	//
	panic("cannot unwrap an empty option")
}

// Render formats the value using the given function, or returns the
// placeholder text when there is no value.
func (o Option[T]) Render(fn func(T) string, placeholder string) string {
	if o.some {
		return fn(o.value)
	}
	//
	return placeholder
}
