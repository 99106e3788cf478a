package seating

import "strconv"

// ExtractRollNumber pulls the trailing run of digits out of a roll number,
// e.g. "CS101" -> 101. The second return is false when the roll contains no
// digits at all.
func ExtractRollNumber(rollNo string) (int, bool) {
	end := -1
	for i := len(rollNo) - 1; i >= 0; i-- {
		if rollNo[i] >= '0' && rollNo[i] <= '9' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, false
	}
	start := end
	for start > 0 && rollNo[start-1] >= '0' && rollNo[start-1] <= '9' {
		start--
	}
	n, err := strconv.Atoi(rollNo[start : end+1])
	if err != nil {
		// Digit run too long for an int; treat as unparsable.
		return 0, false
	}
	return n, true
}

// IsAdjacentRoll reports whether two roll numbers have numeric suffixes that
// differ by exactly one. Rolls without a numeric suffix are never adjacent
// to anything, so such students can be seated freely.
func IsAdjacentRoll(rollA, rollB string) bool {
	a, okA := ExtractRollNumber(rollA)
	b, okB := ExtractRollNumber(rollB)
	if !okA || !okB {
		return false
	}
	diff := a - b
	return diff == 1 || diff == -1
}
