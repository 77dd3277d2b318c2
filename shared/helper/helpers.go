package helper

// Must returns v, or panics with err when it is not nil.
// Use where a failure means a broken program, such as in examples and
// test fixtures.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustDo is Must for calls that only return an error.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}
