package optional

// InvalidUnwrapError is the panic payload of Unwrap and Expect when called
// on an absent Optional. Message is empty for Unwrap and caller-supplied
// for Expect.
type InvalidUnwrapError struct {
	Message string
}

func (e InvalidUnwrapError) Error() string {
	if e.Message == "" {
		return "unwrap of an absent Optional"
	}
	return e.Message
}
