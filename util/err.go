package util

// ErrWrap returns a function that unwraps a (value, error)
// pair, falling back to the given default on error
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrSuppress swallows errors of calls whose
// failure is not relevant to the caller
func ErrSuppress(_ error) {}
