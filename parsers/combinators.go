package parsers

// Alternative tries each option in order, returning the first Found result.
// A NotFound option restores the cursor (options are expected to do this
// themselves) and the next option is tried; an Errored result is returned
// immediately without trying further options, since an error is a
// commitment the parse has already matched part of this alternative.
func Alternative[T any](options ...ParseFunc[T]) ParseFunc[T] {
	return func(in *Input) Result[T] {
		for _, option := range options {
			start := in.SaveCursor()
			result := option(in)
			if result.IsNotFound() {
				in.Restore(start)
				continue
			}
			return result
		}
		return Miss[T]()
	}
}

// Optional turns a NotFound into a Found nil pointer, restoring the cursor.
// A Found value is returned as a Found pointer to it; Errored passes
// through unchanged.
func Optional[T any](p ParseFunc[T]) ParseFunc[*T] {
	return func(in *Input) Result[*T] {
		start := in.SaveCursor()
		result := p(in)
		switch result.Kind {
		case Found:
			v := result.Value
			return Ok[*T](&v)
		case NotFound:
			in.Restore(start)
			return Ok[*T](nil)
		default:
			return Fail[*T](result.Err)
		}
	}
}

// Ensure converts a NotFound from p into a committed Errored, using mkErr to
// build the error. Use this once a prefix of the grammar rule has already
// matched, so failure past this point should be reported rather than
// silently backtracked.
func Ensure[T any](p ParseFunc[T], mkErr func(in *Input) *ParserError) ParseFunc[T] {
	return func(in *Input) Result[T] {
		result := p(in)
		if result.IsNotFound() {
			return Fail[T](mkErr(in))
		}
		return result
	}
}

// Verify runs p, and demotes a Found value failing pred to a NotFound,
// restoring the cursor.
func Verify[T any](p ParseFunc[T], pred func(T) bool) ParseFunc[T] {
	return func(in *Input) Result[T] {
		start := in.SaveCursor()
		result := p(in)
		if result.IsFound() && !pred(result.Value) {
			in.Restore(start)
			return Miss[T]()
		}
		return result
	}
}

// Repeat applies p greedily, collecting Found values until p returns
// NotFound or Errored. If fewer than min values were collected, the cursor
// is restored to the position before the first attempt and NotFound is
// returned. An Errored result from p is propagated immediately.
func Repeat[T any](min int, p ParseFunc[T]) ParseFunc[[]T] {
	return func(in *Input) Result[[]T] {
		initial := in.SaveCursor()
		var values []T
		for {
			start := in.SaveCursor()
			result := p(in)
			switch result.Kind {
			case Found:
				values = append(values, result.Value)
			case NotFound:
				in.Restore(start)
				if len(values) < min {
					in.Restore(initial)
					return Miss[[]T]()
				}
				return Ok(values)
			default:
				return Fail[[]T](result.Err)
			}
		}
	}
}

// Preceded runs prefix, discards its value, then runs p and returns its
// result. If prefix is not found, the whole combinator is not found.
func Preceded[P, T any](prefix ParseFunc[P], p ParseFunc[T]) ParseFunc[T] {
	return func(in *Input) Result[T] {
		start := in.SaveCursor()
		prefixResult := prefix(in)
		switch prefixResult.Kind {
		case Found:
			return p(in)
		case NotFound:
			in.Restore(start)
			return Miss[T]()
		default:
			return Fail[T](prefixResult.Err)
		}
	}
}
