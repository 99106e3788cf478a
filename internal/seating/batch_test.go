package seating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBranchParams(examType string) BatchParams {
	cse := Group{Branch: "CSE", Year: "2"}
	ece := Group{Branch: "ECE", Year: "2"}
	return BatchParams{
		ExamType: examType,
		Groups:   []Group{cse, ece},
		Rooms:    []Room{{RoomNo: "R101", BlockName: "A", FloorName: "1", Capacity: 10}},
		StudentsByGroup: map[Group][]*Student{
			cse: {
				newStudent("CS100", "CSE"),
				newStudent("CS200", "CSE"),
				newStudent("CS300", "CSE"),
				newStudent("CS400", "CSE"),
				newStudent("CS500", "CSE"),
			},
			ece: {
				newStudent("EC1000", "ECE"),
				newStudent("EC2000", "ECE"),
				newStudent("EC3000", "ECE"),
				newStudent("EC4000", "ECE"),
				newStudent("EC5000", "ECE"),
			},
		},
	}
}

func TestGenerateBatchRejectsEmptyRooms(t *testing.T) {
	p := twoBranchParams(ExamTypeSemester)
	p.Rooms = nil

	_, err := GenerateBatch(p)
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestGenerateBatchRejectsEmptyCohorts(t *testing.T) {
	p := twoBranchParams(ExamTypeSemester)
	p.StudentsByGroup = map[Group][]*Student{}

	_, err := GenerateBatch(p)
	assert.ErrorIs(t, err, ErrNoStudents)
}

func TestGenerateBatchRejectsUnknownExamType(t *testing.T) {
	p := twoBranchParams("FINAL")

	_, err := GenerateBatch(p)
	assert.ErrorIs(t, err, ErrExamType)
}

func TestGenerateBatchSemesterRejectsSingleBranch(t *testing.T) {
	cse2 := Group{Branch: "CSE", Year: "2"}
	cse3 := Group{Branch: "CSE", Year: "3"}
	p := BatchParams{
		ExamType: ExamTypeSemester,
		Groups:   []Group{cse2, cse3},
		Rooms:    []Room{{RoomNo: "R101", Capacity: 6}},
		StudentsByGroup: map[Group][]*Student{
			cse2: {newStudent("CS100", "CSE")},
			cse3: {newStudent("CS900", "CSE")},
		},
	}

	_, err := GenerateBatch(p)
	assert.ErrorIs(t, err, ErrSingleBranch)
}

func TestPairGroupsRoundRobin(t *testing.T) {
	groups := []Group{
		{Branch: "CSE", Year: "2"},
		{Branch: "ECE", Year: "2"},
		{Branch: "MECH", Year: "2"},
	}

	one, two, err := pairGroups(0, groups)
	require.NoError(t, err)
	assert.Equal(t, groups[0], one)
	assert.Equal(t, groups[1], two)

	one, two, err = pairGroups(2, groups)
	require.NoError(t, err)
	assert.Equal(t, groups[2], one)
	assert.Equal(t, groups[0], two)
}

func TestPairGroupsSubstitutesOnBranchCollision(t *testing.T) {
	groups := []Group{
		{Branch: "CSE", Year: "2"},
		{Branch: "CSE", Year: "3"},
		{Branch: "ECE", Year: "2"},
	}

	// Round-robin picks CSE/CSE for room 0; the first group of another
	// branch replaces the first slot.
	one, two, err := pairGroups(0, groups)
	require.NoError(t, err)
	assert.Equal(t, groups[2], one)
	assert.Equal(t, groups[1], two)
}

func TestGenerateBatchSemesterFullFill(t *testing.T) {
	result, err := GenerateBatch(twoBranchParams(ExamTypeSemester))
	require.NoError(t, err)
	require.Len(t, result.Rooms, 1)
	assert.NotEqual(t, uuid.Nil, result.BatchID)
	assert.Equal(t, ExamTypeSemester, result.ExamType)

	assert.Equal(t, 10, result.Stats.TotalStudents)
	assert.Equal(t, 10, result.Stats.TotalSeats)
	assert.Equal(t, 10, result.Stats.SeatsFilled)
	assert.Equal(t, 0, result.Stats.EmptySeats)

	require.Len(t, result.Stats.PerGroup, 2)
	for _, g := range result.Stats.PerGroup {
		assert.Equal(t, 5, g.Total)
		assert.Equal(t, 5, g.Assigned)
		assert.Equal(t, 0, g.Unassigned)
	}

	assertNoAdjacentPlacements(t, result.Seats())
}

func TestGenerateBatchMidPairsEveryone(t *testing.T) {
	p := twoBranchParams(ExamTypeMid)
	p.Rooms = []Room{{RoomNo: "R101", Capacity: 5}}

	result, err := GenerateBatch(p)
	require.NoError(t, err)
	assert.Equal(t, ExamTypeMid, result.ExamType)

	assert.Equal(t, 10, result.Stats.TotalStudents)
	assert.Equal(t, 5, result.Stats.SeatsFilled)
	assert.Equal(t, 0, result.Stats.EmptySeats)

	for _, seat := range result.Seats() {
		require.NotNil(t, seat.StudentOne)
		require.NotNil(t, seat.StudentTwo)
		assert.NotEqual(t, seat.StudentOne.Branch, seat.StudentTwo.Branch)
	}
}

func TestGenerateBatchSpansRooms(t *testing.T) {
	p := twoBranchParams(ExamTypeSemester)
	p.Rooms = []Room{
		{RoomNo: "R101", Capacity: 6},
		{RoomNo: "R102", Capacity: 6},
	}

	result, err := GenerateBatch(p)
	require.NoError(t, err)
	require.Len(t, result.Rooms, 2)

	// Ten students across twelve seats; pools drain across rooms.
	assert.Equal(t, 10, result.Stats.TotalStudents)
	assert.Equal(t, 12, result.Stats.TotalSeats)
	assert.Equal(t, 2, result.Stats.EmptySeats)

	// Every seated student appears exactly once in the whole batch.
	seen := map[string]bool{}
	for _, seat := range result.Seats() {
		if seat.StudentOne == nil {
			continue
		}
		assert.False(t, seen[seat.StudentOne.RollNo], "duplicate %s", seat.StudentOne.RollNo)
		seen[seat.StudentOne.RollNo] = true
	}
	assert.Len(t, seen, 10)
}

func TestGenerateBatchRerunsAgreeOnCounts(t *testing.T) {
	// Shuffling changes who sits where, never how many sit.
	first, err := GenerateBatch(twoBranchParams(ExamTypeSemester))
	require.NoError(t, err)
	second, err := GenerateBatch(twoBranchParams(ExamTypeSemester))
	require.NoError(t, err)

	assert.NotEqual(t, first.BatchID, second.BatchID)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestDistributeInvigilators(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rooms := []string{"R101", "R102", "R103"}

	out := DistributeInvigilators(rooms, []uuid.UUID{a, b})
	require.Len(t, out, 3)
	assert.Equal(t, []uuid.UUID{a}, out["R101"])
	assert.Equal(t, []uuid.UUID{b}, out["R102"])
	assert.Equal(t, []uuid.UUID{a}, out["R103"], "wraps when rooms outnumber invigilators")
}

func TestDistributeInvigilatorsEmptyList(t *testing.T) {
	out := DistributeInvigilators([]string{"R101"}, nil)
	assert.Empty(t, out)
}
