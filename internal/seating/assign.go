package seating

// SemesterParams drives single-occupant assignment for one room. PoolOne and
// PoolTwo hold two distinct-branch cohorts sharing the room seat-by-seat.
type SemesterParams struct {
	RoomNo   string
	PoolOne  *Pool
	PoolTwo  *Pool
	Capacity int
}

// GenerateSemesterSeating fills one room in semester mode. Even seat indexes
// draw from PoolOne, odd from PoolTwo. Each seat takes the first student in
// the shuffled pool whose roll is not adjacent to the previous placement;
// when none qualifies the seat stays empty and the adjacency memory keeps
// its last value. Pool exhaustion is a normal condition, not an error.
func GenerateSemesterSeating(p SemesterParams) []SeatAssignment {
	labels := BuildSeatLabels(p.Capacity)
	out := make([]SeatAssignment, 0, len(labels))
	lastRoll := ""
	for i, label := range labels {
		pool := p.PoolOne
		if i%2 == 1 {
			pool = p.PoolTwo
		}
		student := pool.TakeNonAdjacent(lastRoll)
		if student == nil {
			out = append(out, SeatAssignment{RoomNo: p.RoomNo, SeatLabel: label})
			continue
		}
		lastRoll = student.RollNo
		out = append(out, SeatAssignment{RoomNo: p.RoomNo, SeatLabel: label, StudentOne: student})
	}
	return out
}

// MidParams drives dual-occupant assignment for one room. Pool holds the
// merged cohort across all selected groups.
type MidParams struct {
	RoomNo   string
	Pool     *Pool
	Capacity int
}

// GenerateMidSeating fills one room in mid mode, two students per seat. The
// first occupant follows the same non-adjacent search as semester mode. The
// second must be from a different branch AND non-adjacent to both the
// previous seat and the first occupant; if no such candidate exists the
// seat stays single-occupant — neither constraint is relaxed on its own.
// The adjacency memory advances to the second occupant's roll when one was
// seated, otherwise to the first's.
func GenerateMidSeating(p MidParams) []SeatAssignment {
	labels := BuildSeatLabels(p.Capacity)
	out := make([]SeatAssignment, 0, len(labels))
	lastRoll := ""
	for _, label := range labels {
		one := p.Pool.TakeNonAdjacent(lastRoll)
		if one == nil {
			out = append(out, SeatAssignment{RoomNo: p.RoomNo, SeatLabel: label})
			continue
		}
		two := p.Pool.TakeNonAdjacentOtherBranch(one.Branch, lastRoll, one.RollNo)
		if two != nil {
			lastRoll = two.RollNo
		} else {
			lastRoll = one.RollNo
		}
		out = append(out, SeatAssignment{RoomNo: p.RoomNo, SeatLabel: label, StudentOne: one, StudentTwo: two})
	}
	return out
}

// CountSeatsFilled counts seats holding at least one student.
func CountSeatsFilled(seats []SeatAssignment) int {
	n := 0
	for _, s := range seats {
		if s.StudentOne != nil {
			n++
		}
	}
	return n
}
