package outcome

// Matcher pairs the handlers for the two Outcome variants. Both handlers
// must be set; Match dispatches to exactly one of them.
type Matcher[T, E, U any] struct {
	Ok  func(value T) U
	Err func(err E) U
}

// Match consumes an Outcome without unwrapping: it dispatches to the
// handler matching the active variant and returns that handler's result.
func Match[T, E, U any](r Outcome[T, E], m Matcher[T, E, U]) U {
	if r.ok {
		return m.Ok(r.value)
	}
	return m.Err(r.err)
}
