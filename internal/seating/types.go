// Package seating implements the exam seat assignment engine: seat label
// geometry, roll-number adjacency rules, shuffled candidate pools and the
// per-room and per-batch assignment algorithms. Everything in this package
// operates on plain in-memory values; persistence and rendering live in
// their own layers.
package seating

import "github.com/google/uuid"

// Exam modes supported by the engine.
const (
	ExamTypeMid      = "MID"
	ExamTypeSemester = "SEMESTER"
)

// Student is the engine's view of one eligible student. Filtering by
// approval state happens before a Student reaches a pool.
type Student struct {
	ID     uuid.UUID
	Name   string
	RollNo string
	Branch string
	Year   string
}

// Room holds the fields the engine cares about. Block and floor are
// display-only metadata carried through for rendering.
type Room struct {
	RoomNo    string
	BlockName string
	FloorName string
	Capacity  int
}

// Group identifies one (branch, year) cohort of eligible students.
type Group struct {
	Branch string
	Year   string
}

// Occupancy tags how a seat ended up after assignment.
type Occupancy int

const (
	Empty Occupancy = iota
	SingleOccupant
	DualOccupant
)

// SeatAssignment is one seat in a generated plan. StudentOne is nil when the
// pool ran out of valid candidates; StudentTwo is only ever set in mid mode
// and never without StudentOne.
type SeatAssignment struct {
	RoomNo     string
	SeatLabel  string
	StudentOne *Student
	StudentTwo *Student
}

// Occupancy reports the tagged outcome for this seat.
func (s SeatAssignment) Occupancy() Occupancy {
	switch {
	case s.StudentOne == nil:
		return Empty
	case s.StudentTwo == nil:
		return SingleOccupant
	default:
		return DualOccupant
	}
}

// GroupStats counts one cohort's outcome for a batch.
type GroupStats struct {
	Group      Group
	Total      int
	Assigned   int
	Unassigned int
}

// BatchStats aggregates exact counts folded over the emitted assignments.
type BatchStats struct {
	TotalStudents int
	TotalSeats    int
	SeatsFilled   int
	EmptySeats    int
	PerGroup      []GroupStats
}

// RoomPlan is the per-room slice of a batch, kept in canonical seat order.
type RoomPlan struct {
	Room  Room
	Seats []SeatAssignment
}

// BatchResult is one immutable generation run. A new run always mints a new
// BatchID; nothing is ever updated in place.
type BatchResult struct {
	BatchID  uuid.UUID
	ExamType string
	Rooms    []RoomPlan
	Stats    BatchStats
}

// Seats flattens the per-room plans into one ordered sequence.
func (b *BatchResult) Seats() []SeatAssignment {
	var out []SeatAssignment
	for _, rp := range b.Rooms {
		out = append(out, rp.Seats...)
	}
	return out
}
