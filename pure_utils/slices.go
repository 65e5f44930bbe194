package pure_utils

// EmptyIfNil returns an empty non nil slice for a nil input, so that it is encoded as [] and not null.
func EmptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
