package optional

// Matcher pairs the handlers for the two Optional variants. Both handlers
// must be set; Match dispatches to exactly one of them.
type Matcher[T, U any] struct {
	Some func(value T) U
	None func() U
}

// Match consumes an Optional without unwrapping: it dispatches to the
// handler matching the active variant and returns that handler's result.
func Match[T, U any](o Optional[T], m Matcher[T, U]) U {
	if o.some {
		return m.Some(o.value)
	}
	return m.None()
}
