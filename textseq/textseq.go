package textseq

// Seq is an ordered, immutable sequence of Unicode scalar values.
// Callers must not mutate a Seq after handing it to an engine.
type Seq []rune

// New decodes s into its sequence of Unicode scalar values.
func New(s string) Seq { return Seq(s) }

// Len returns the number of scalar values in the sequence.
func (s Seq) Len() int { return len(s) }

// String re-encodes the sequence as a UTF-8 string.
func (s Seq) String() string { return string(s) }

// Equal reports whether a and b hold the same scalar values in the same order.
func Equal(a, b Seq) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by scalar value.
// It returns -1 if a sorts before b, +1 if a sorts after b, and 0 if equal.
// A proper prefix sorts before its extension.
func Compare(a, b Seq) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CommonPrefix returns the length of the longest common prefix of a and b,
// comparing element by element and stopping at the first mismatch.
// The result is capped at max; max ≤ 0 yields 0.
func CommonPrefix(a, b Seq, max int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if max < n {
		n = max
	}
	if n < 0 {
		return 0
	}
	l := 0
	for l < n && a[l] == b[l] {
		l++
	}
	return l
}
