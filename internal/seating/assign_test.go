package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertNoAdjacentPlacements walks seats in label order and checks the
// adjacency chain: each placement must not neighbour the previous one, where
// a dual seat is represented by its second occupant.
func assertNoAdjacentPlacements(t *testing.T, seats []SeatAssignment) {
	t.Helper()
	lastRoll := ""
	for _, seat := range seats {
		if seat.StudentOne == nil {
			continue
		}
		assert.False(t, IsAdjacentRoll(seat.StudentOne.RollNo, lastRoll),
			"seat %s occupant one %s adjacent to previous %s", seat.SeatLabel, seat.StudentOne.RollNo, lastRoll)
		lastRoll = seat.StudentOne.RollNo
		if seat.StudentTwo != nil {
			assert.False(t, IsAdjacentRoll(seat.StudentTwo.RollNo, seat.StudentOne.RollNo),
				"seat %s occupants adjacent", seat.SeatLabel)
			lastRoll = seat.StudentTwo.RollNo
		}
	}
}

func TestGenerateSemesterSeatingFillsAlternatingPools(t *testing.T) {
	// Rolls far apart so adjacency never blocks a placement.
	one := NewPool([]*Student{
		newStudent("CS100", "CSE"),
		newStudent("CS200", "CSE"),
		newStudent("CS300", "CSE"),
		newStudent("CS400", "CSE"),
		newStudent("CS500", "CSE"),
	})
	two := NewPool([]*Student{
		newStudent("EC1000", "ECE"),
		newStudent("EC2000", "ECE"),
		newStudent("EC3000", "ECE"),
		newStudent("EC4000", "ECE"),
		newStudent("EC5000", "ECE"),
	})

	seats := GenerateSemesterSeating(SemesterParams{
		RoomNo:   "R101",
		PoolOne:  one,
		PoolTwo:  two,
		Capacity: 10,
	})
	require.Len(t, seats, 10)
	assert.Equal(t, 10, CountSeatsFilled(seats))
	assert.Equal(t, 0, one.Len())
	assert.Equal(t, 0, two.Len())

	for i, seat := range seats {
		require.NotNil(t, seat.StudentOne, "seat %s", seat.SeatLabel)
		assert.Nil(t, seat.StudentTwo, "semester mode is single occupancy")
		assert.Equal(t, "R101", seat.RoomNo)
		assert.Equal(t, BuildSeatLabels(10)[i], seat.SeatLabel)

		want := "CSE"
		if i%2 == 1 {
			want = "ECE"
		}
		assert.Equal(t, want, seat.StudentOne.Branch, "seat %s", seat.SeatLabel)
	}

	assertNoAdjacentPlacements(t, seats)
}

func TestGenerateSemesterSeatingLeavesBlockedSeatEmpty(t *testing.T) {
	one := NewPool([]*Student{newStudent("CS101", "CSE")})
	two := NewPool([]*Student{newStudent("EC102", "ECE")})

	seats := GenerateSemesterSeating(SemesterParams{
		RoomNo:   "R101",
		PoolOne:  one,
		PoolTwo:  two,
		Capacity: 2,
	})
	require.Len(t, seats, 2)

	// CS101 seats first; EC102 is adjacent to it, so A1 stays empty and the
	// student stays in the pool.
	require.NotNil(t, seats[0].StudentOne)
	assert.Equal(t, "CS101", seats[0].StudentOne.RollNo)
	assert.Nil(t, seats[1].StudentOne)
	assert.Equal(t, 1, two.Len())
}

func TestGenerateSemesterSeatingEmptySeatKeepsAdjacencyMemory(t *testing.T) {
	// Pool two is empty, so every odd seat stays vacant. The memory must
	// survive the gap: the second CSE placement still avoids the first.
	one := NewPool([]*Student{
		newStudent("CS101", "CSE"),
		newStudent("CS102", "CSE"),
	})
	two := NewPool(nil)

	seats := GenerateSemesterSeating(SemesterParams{
		RoomNo:   "R101",
		PoolOne:  one,
		PoolTwo:  two,
		Capacity: 3,
	})
	require.Len(t, seats, 3)
	require.NotNil(t, seats[0].StudentOne)
	assert.Nil(t, seats[1].StudentOne)
	assert.Nil(t, seats[2].StudentOne, "remaining student is adjacent across the gap")
	assert.Equal(t, 1, one.Len())
}

func TestGenerateMidSeatingPairsAcrossBranches(t *testing.T) {
	pool := NewPool([]*Student{
		newStudent("CS100", "CSE"),
		newStudent("CS300", "CSE"),
		newStudent("EC500", "ECE"),
		newStudent("EC700", "ECE"),
	})

	seats := GenerateMidSeating(MidParams{
		RoomNo:   "R202",
		Pool:     pool,
		Capacity: 2,
	})
	require.Len(t, seats, 2)
	assert.Equal(t, 0, pool.Len())

	for _, seat := range seats {
		require.NotNil(t, seat.StudentOne, "seat %s", seat.SeatLabel)
		require.NotNil(t, seat.StudentTwo, "seat %s", seat.SeatLabel)
		assert.NotEqual(t, seat.StudentOne.Branch, seat.StudentTwo.Branch,
			"seat %s pairs within one branch", seat.SeatLabel)
	}

	assertNoAdjacentPlacements(t, seats)
}

func TestGenerateMidSeatingFallsBackToSingleOccupancy(t *testing.T) {
	// Everyone is CSE: no cross-branch partner exists anywhere.
	pool := NewPool([]*Student{
		newStudent("CS100", "CSE"),
		newStudent("CS300", "CSE"),
	})

	seats := GenerateMidSeating(MidParams{
		RoomNo:   "R202",
		Pool:     pool,
		Capacity: 1,
	})
	require.Len(t, seats, 1)
	require.NotNil(t, seats[0].StudentOne)
	assert.Nil(t, seats[0].StudentTwo)
	assert.Equal(t, 1, pool.Len())
}

func TestCountSeatsFilled(t *testing.T) {
	seats := []SeatAssignment{
		{SeatLabel: "A0", StudentOne: newStudent("CS100", "CSE")},
		{SeatLabel: "A1"},
		{SeatLabel: "A2", StudentOne: newStudent("CS300", "CSE"), StudentTwo: newStudent("EC500", "ECE")},
	}
	assert.Equal(t, 2, CountSeatsFilled(seats))
}
