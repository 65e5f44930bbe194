package pure_utils

// Amazingly, the Go standard library to not provide the function 'map'
// The rational of why the Go team rejects it is explained in this wonderfull stack overflow answer.
// https://stackoverflow.com/questions/71624828/is-there-a-way-to-map-an-array-of-objects-in-golang

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// Strings converts a slice of string based enum values to plain strings.
func Strings[T ~string](src []T) []string {
	return Map(src, func(v T) string { return string(v) })
}
