package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLabel(t *testing.T) {
	cases := []struct {
		index int
		label string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, ColumnLabel(tc.index), "index %d", tc.index)
	}
}

func TestColumnIndexInvertsColumnLabel(t *testing.T) {
	for i := 0; i < 1000; i++ {
		label := ColumnLabel(i)
		assert.Equal(t, i, ColumnIndex(label), "label %s", label)
	}
}

func TestColumnIndexRejectsBadInput(t *testing.T) {
	for _, label := range []string{"", "a", "A1", "1A", "A B", "ä"} {
		assert.Equal(t, -1, ColumnIndex(label), "label %q", label)
	}
}

func TestBuildSeatLabelsSmallRoom(t *testing.T) {
	assert.Equal(t, []string{"A0", "A1", "A2", "A3", "A4", "A5", "B0"}, BuildSeatLabels(7))
}

func TestBuildSeatLabelsNonPositiveCapacity(t *testing.T) {
	assert.Nil(t, BuildSeatLabels(0))
	assert.Nil(t, BuildSeatLabels(-3))
}

func TestBuildSeatLabelsUniqueAndOrdered(t *testing.T) {
	labels := BuildSeatLabels(200)
	require.Len(t, labels, 200)

	seen := map[string]bool{}
	for i, label := range labels {
		assert.False(t, seen[label], "duplicate label %s", label)
		seen[label] = true
		if i > 0 {
			assert.Negative(t, CompareSeatLabels(labels[i-1], label),
				"%s should precede %s", labels[i-1], label)
		}
	}
}

func TestBuildSeatLabelsPrefixStable(t *testing.T) {
	// A smaller capacity is always a prefix of a larger one, so a persisted
	// layout can be rebuilt after a room's capacity grows.
	small := BuildSeatLabels(40)
	large := BuildSeatLabels(90)
	assert.Equal(t, small, large[:40])
}

func TestParseSeatLabel(t *testing.T) {
	col, row, ok := ParseSeatLabel("A0")
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row, ok = ParseSeatLabel("AB3")
	require.True(t, ok)
	assert.Equal(t, 27, col)
	assert.Equal(t, 3, row)

	for _, label := range []string{"", "A", "7", "a0", "A?", "0A"} {
		_, _, ok := ParseSeatLabel(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestCompareSeatLabels(t *testing.T) {
	assert.Negative(t, CompareSeatLabels("A5", "B0"))
	assert.Positive(t, CompareSeatLabels("AA0", "Z5"))
	assert.Zero(t, CompareSeatLabels("C3", "C3"))

	// Unparsable labels sort after valid ones.
	assert.Negative(t, CompareSeatLabels("A0", "??"))
	assert.Positive(t, CompareSeatLabels("??", "A0"))
}
