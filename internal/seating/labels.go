package seating

import "strings"

// rowBand is the fixed set of row digits cycled within every column.
var rowBand = []string{"0", "1", "2", "3", "4", "5"}

// RowBandSize is the number of rows per column in every room layout.
const RowBandSize = 6

// ColumnLabel encodes a zero-based column index the way spreadsheets do:
// 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB.
func ColumnLabel(index int) string {
	n := index
	var b strings.Builder
	for n >= 0 {
		b.WriteByte(byte('A' + n%26))
		n = n/26 - 1
	}
	// Letters were emitted least significant first.
	s := []byte(b.String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

// ColumnIndex inverts ColumnLabel. Returns -1 for anything that is not a
// non-empty run of uppercase letters.
func ColumnIndex(label string) int {
	if label == "" {
		return -1
	}
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		n = n*26 + int(c-'A') + 1
	}
	return n - 1
}

// BuildSeatLabels maps a room capacity to the canonical ordered label
// sequence: column-major, six rows per column, truncated at capacity. The
// same capacity always reproduces the same order, which is what lets the
// grid view and the PDF rebuild a layout from persisted seats alone.
func BuildSeatLabels(capacity int) []string {
	if capacity <= 0 {
		return nil
	}
	cols := (capacity + RowBandSize - 1) / RowBandSize
	labels := make([]string, 0, capacity)
	for c := 0; c < cols; c++ {
		col := ColumnLabel(c)
		for _, row := range rowBand {
			if len(labels) >= capacity {
				break
			}
			labels = append(labels, col+row)
		}
	}
	return labels
}

// ParseSeatLabel splits a label into its column index and row digit.
// ok is false for labels that do not match <letters><single digit>.
func ParseSeatLabel(label string) (col int, row int, ok bool) {
	if len(label) < 2 {
		return 0, 0, false
	}
	letters := label[:len(label)-1]
	digit := label[len(label)-1]
	if digit < '0' || digit > '9' {
		return 0, 0, false
	}
	col = ColumnIndex(letters)
	if col < 0 {
		return 0, 0, false
	}
	return col, int(digit - '0'), true
}

// CompareSeatLabels orders labels the canonical way: column index first,
// then row. Unparsable labels sort after valid ones.
func CompareSeatLabels(a, b string) int {
	ac, ar, aok := ParseSeatLabel(a)
	bc, br, bok := ParseSeatLabel(b)
	if !aok || !bok {
		switch {
		case aok:
			return -1
		case bok:
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
	if ac != bc {
		return ac - bc
	}
	return ar - br
}
