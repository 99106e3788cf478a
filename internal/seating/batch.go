package seating

import (
	"errors"

	"github.com/google/uuid"
)

// Configuration errors abort a run before any seat is computed and before a
// batch id is minted.
var (
	ErrNoRooms      = errors.New("no rooms selected for seating")
	ErrNoStudents   = errors.New("no eligible students in the selected groups")
	ErrSingleBranch = errors.New("semester seating requires at least two distinct branches")
	ErrExamType     = errors.New("unknown exam type")
)

// BatchParams is the full input of one generation run. Groups is ordered and
// drives the round-robin room pairing; StudentsByGroup holds the eligible
// cohort for each group, already filtered to approved and not blocked.
type BatchParams struct {
	ExamType        string
	Groups          []Group
	Rooms           []Room
	StudentsByGroup map[Group][]*Student
}

// pairGroups picks the two cohorts feeding room i in semester mode: groups
// i and i+1 round-robin, substituting the first different-branch group in
// list order when the pair collapses to one branch.
func pairGroups(roomIndex int, groups []Group) (Group, Group, error) {
	n := len(groups)
	one := groups[roomIndex%n]
	two := groups[(roomIndex+1)%n]
	if one.Branch != two.Branch {
		return one, two, nil
	}
	for _, g := range groups {
		if g.Branch != two.Branch {
			return g, two, nil
		}
	}
	return Group{}, Group{}, ErrSingleBranch
}

func distinctBranches(groups []Group) int {
	seen := map[string]struct{}{}
	for _, g := range groups {
		seen[g.Branch] = struct{}{}
	}
	return len(seen)
}

// GenerateBatch runs one complete seating generation. Pools are fresh
// shuffled copies private to this call, drawn down across rooms; the result
// is an immutable snapshot with exact aggregate statistics. Configuration
// errors (no rooms, no students, too few branches for semester mode) are
// returned before any pool is consumed.
func GenerateBatch(p BatchParams) (*BatchResult, error) {
	if len(p.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	total := 0
	for _, g := range p.Groups {
		total += len(p.StudentsByGroup[g])
	}
	if len(p.Groups) == 0 || total == 0 {
		return nil, ErrNoStudents
	}

	switch p.ExamType {
	case ExamTypeSemester:
		if distinctBranches(p.Groups) < 2 {
			return nil, ErrSingleBranch
		}
		return generateSemesterBatch(p)
	case ExamTypeMid:
		return generateMidBatch(p)
	default:
		return nil, ErrExamType
	}
}

func generateSemesterBatch(p BatchParams) (*BatchResult, error) {
	// Resolve every room's pairing up front so a collapsed pairing aborts
	// the batch with nothing computed.
	type pairing struct{ one, two Group }
	pairings := make([]pairing, len(p.Rooms))
	for i := range p.Rooms {
		one, two, err := pairGroups(i, p.Groups)
		if err != nil {
			return nil, err
		}
		pairings[i] = pairing{one, two}
	}

	pools := make(map[Group]*Pool, len(p.Groups))
	for _, g := range p.Groups {
		pools[g] = NewPool(p.StudentsByGroup[g])
	}

	result := &BatchResult{BatchID: uuid.New(), ExamType: ExamTypeSemester}
	for i, room := range p.Rooms {
		seats := GenerateSemesterSeating(SemesterParams{
			RoomNo:   room.RoomNo,
			PoolOne:  pools[pairings[i].one],
			PoolTwo:  pools[pairings[i].two],
			Capacity: room.Capacity,
		})
		result.Rooms = append(result.Rooms, RoomPlan{Room: room, Seats: seats})
	}
	result.Stats = foldStats(result, p)
	return result, nil
}

func generateMidBatch(p BatchParams) (*BatchResult, error) {
	var merged []*Student
	for _, g := range p.Groups {
		merged = append(merged, p.StudentsByGroup[g]...)
	}
	pool := NewPool(merged)

	result := &BatchResult{BatchID: uuid.New(), ExamType: ExamTypeMid}
	for _, room := range p.Rooms {
		seats := GenerateMidSeating(MidParams{
			RoomNo:   room.RoomNo,
			Pool:     pool,
			Capacity: room.Capacity,
		})
		result.Rooms = append(result.Rooms, RoomPlan{Room: room, Seats: seats})
	}
	result.Stats = foldStats(result, p)
	return result, nil
}

// foldStats walks the emitted assignments once and produces exact counts.
// Unassigned means eligible-but-not-seated, never ineligible.
func foldStats(result *BatchResult, p BatchParams) BatchStats {
	stats := BatchStats{}
	assignedByGroup := make(map[Group]int, len(p.Groups))

	for _, rp := range result.Rooms {
		stats.TotalSeats += rp.Room.Capacity
		for _, seat := range rp.Seats {
			for _, s := range []*Student{seat.StudentOne, seat.StudentTwo} {
				if s == nil {
					continue
				}
				stats.TotalStudents++
				assignedByGroup[Group{Branch: s.Branch, Year: s.Year}]++
			}
			if seat.StudentOne != nil {
				stats.SeatsFilled++
			}
		}
	}
	stats.EmptySeats = stats.TotalSeats - stats.SeatsFilled

	for _, g := range p.Groups {
		eligible := len(p.StudentsByGroup[g])
		assigned := assignedByGroup[g]
		stats.PerGroup = append(stats.PerGroup, GroupStats{
			Group:      g,
			Total:      eligible,
			Assigned:   assigned,
			Unassigned: eligible - assigned,
		})
	}
	return stats
}

// DistributeInvigilators spreads a flat invigilator list one per room,
// round-robin, wrapping when rooms outnumber invigilators. Used as the
// fallback when no explicit room mapping was supplied; it has no interaction
// with seat computation.
func DistributeInvigilators(roomNos []string, invigilatorIDs []uuid.UUID) map[string][]uuid.UUID {
	out := make(map[string][]uuid.UUID, len(roomNos))
	if len(invigilatorIDs) == 0 {
		return out
	}
	for i, roomNo := range roomNos {
		out[roomNo] = []uuid.UUID{invigilatorIDs[i%len(invigilatorIDs)]}
	}
	return out
}
