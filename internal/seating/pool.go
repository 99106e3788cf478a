package seating

import "math/rand"

// Pool is the shuffled working list for one batch run. Every successful
// take removes exactly one student; a pool is private to the run that built
// it and is discarded afterwards.
type Pool struct {
	students []*Student
}

// PrepareStudents returns a uniformly shuffled copy of the input. The input
// slice is never mutated.
func PrepareStudents(list []*Student) []*Student {
	out := make([]*Student, len(list))
	copy(out, list)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewPool shuffles list into a fresh pool.
func NewPool(list []*Student) *Pool {
	return &Pool{students: PrepareStudents(list)}
}

// Len reports how many students remain.
func (p *Pool) Len() int {
	return len(p.students)
}

// Remaining returns the students still in the pool, in pool order.
func (p *Pool) Remaining() []*Student {
	out := make([]*Student, len(p.students))
	copy(out, p.students)
	return out
}

// removeAt takes the student at index i out of the pool, preserving order.
func (p *Pool) removeAt(i int) *Student {
	s := p.students[i]
	p.students = append(p.students[:i], p.students[i+1:]...)
	return s
}

// TakeNonAdjacent removes and returns the first student whose roll is not
// adjacent to any of avoidRolls. Empty strings in avoidRolls are ignored.
// Returns nil when no candidate qualifies; the pool is left untouched then.
func (p *Pool) TakeNonAdjacent(avoidRolls ...string) *Student {
	for i, s := range p.students {
		if !adjacentToAny(s.RollNo, avoidRolls) {
			return p.removeAt(i)
		}
	}
	return nil
}

// TakeNonAdjacentOtherBranch is TakeNonAdjacent with the extra requirement
// that the student's branch differs from branch. Used to build cross-branch
// pairs in mid mode.
func (p *Pool) TakeNonAdjacentOtherBranch(branch string, avoidRolls ...string) *Student {
	for i, s := range p.students {
		if s.Branch != branch && !adjacentToAny(s.RollNo, avoidRolls) {
			return p.removeAt(i)
		}
	}
	return nil
}

func adjacentToAny(rollNo string, avoid []string) bool {
	for _, r := range avoid {
		if r == "" {
			continue
		}
		if IsAdjacentRoll(rollNo, r) {
			return true
		}
	}
	return false
}
