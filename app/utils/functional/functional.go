package functional

// Map applies f to every element of in and returns the results in order.
func Map[T, V any](in []T, f func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, item := range in {
		out = append(out, f(item))
	}
	return out
}
