package common

// Chunk splits s into consecutive runs of at most n elements. The runs share
// the backing array of s.
func Chunk[S ~[]E, E any](s S, n int) []S {
	if n <= 0 || len(s) == 0 {
		return nil
	}

	out := make([]S, 0, (len(s)+n-1)/n)
	for start := 0; start < len(s); start += n {
		end := min(start+n, len(s))
		out = append(out, s[start:end:end])
	}

	return out
}
