package parser

// parseFunc is a single production. On failure it returns the input it was
// given, unchanged.
type parseFunc[T any] func(in input) (T, input, bool)

// alt tries each alternative in order; the first that matches wins.
func alt[T any](alternatives ...parseFunc[T]) parseFunc[T] {
	return func(in input) (T, input, bool) {
		for _, p := range alternatives {
			if v, out, ok := p(in); ok {
				return v, out, true
			}
		}

		var zero T
		return zero, in, false
	}
}

// many0 applies p until it fails or stops consuming input.
func many0[T any](p parseFunc[T]) parseFunc[[]T] {
	return func(in input) ([]T, input, bool) {
		var items []T
		for {
			v, out, ok := p(in)
			if !ok || out.off == in.off {
				return items, in, true
			}
			items = append(items, v)
			in = out
		}
	}
}

// many1 is many0 that requires at least one match.
func many1[T any](p parseFunc[T]) parseFunc[[]T] {
	return func(in input) ([]T, input, bool) {
		items, out, _ := many0(p)(in)
		if len(items) == 0 {
			return nil, in, false
		}
		return items, out, true
	}
}

// optional never fails; it yields the zero value when p does not match.
func optional[T any](p parseFunc[T]) parseFunc[T] {
	return func(in input) (T, input, bool) {
		if v, out, ok := p(in); ok {
			return v, out, true
		}

		var zero T
		return zero, in, true
	}
}

// mapTo converts the result of a successful match.
func mapTo[T, U any](p parseFunc[T], fn func(T) U) parseFunc[U] {
	return func(in input) (U, input, bool) {
		v, out, ok := p(in)
		if !ok {
			var zero U
			return zero, in, false
		}
		return fn(v), out, true
	}
}
