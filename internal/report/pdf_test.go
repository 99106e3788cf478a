package report

import (
	"testing"

	"exam-seating/internal/seating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() RoomPayload {
	return RoomPayload{
		RoomNo:       "R101",
		ExamType:     seating.ExamTypeSemester,
		Capacity:     8,
		Invigilators: []string{"Dr. Rao (Professor) - CSE"},
		Seats: []Seat{
			{Label: "A0", One: &Occupant{Name: "Anil Kumar", RollNo: "CS101", Branch: "CSE", Year: "2"}},
			{Label: "A2", One: &Occupant{Name: "Bhavya Reddy", RollNo: "EC305", Branch: "ECE", Year: "2"}},
		},
	}
}

func TestBuildRoomPDF(t *testing.T) {
	b := NewBuilder("Test Institute of Technology")

	pdf, err := b.BuildRoomPDF(samplePayload())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestBuildCombinedPDFGrowsWithRooms(t *testing.T) {
	b := NewBuilder("Test Institute of Technology")

	one, err := b.BuildCombinedPDF([]RoomPayload{samplePayload()})
	require.NoError(t, err)
	two, err := b.BuildCombinedPDF([]RoomPayload{samplePayload(), samplePayload()})
	require.NoError(t, err)

	assert.Greater(t, len(two), len(one))
}

func TestBuildRowsFillsEmptySeats(t *testing.T) {
	rows := buildRows(samplePayload())
	require.Len(t, rows, 8, "one row per seat of the canonical layout")

	assert.Equal(t, "A0", rows[0][0])
	assert.Equal(t, "Anil Kumar", rows[0][1])

	// A1 was never persisted, so it renders as an empty seat.
	assert.Equal(t, "A1", rows[1][0])
	assert.Equal(t, "EMPTY", rows[1][1])
}

func TestBuildRowsMidMode(t *testing.T) {
	payload := RoomPayload{
		RoomNo:   "R202",
		ExamType: seating.ExamTypeMid,
		Capacity: 2,
		Seats: []Seat{
			{
				Label: "A0",
				One:   &Occupant{Name: "Anil Kumar", RollNo: "CS101", Branch: "CSE", Year: "2"},
				Two:   &Occupant{Name: "Bhavya Reddy", RollNo: "EC305", Branch: "ECE", Year: "2"},
			},
			{
				Label: "A1",
				One:   &Occupant{Name: "Chandra Sekhar", RollNo: "CS305", Branch: "CSE", Year: "2"},
			},
		},
	}

	rows := buildRows(payload)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], len(midColumns))

	assert.Equal(t, "Bhavya Reddy", rows[0][4])
	assert.Equal(t, "EMPTY", rows[1][4], "single occupancy leaves the partner columns empty")
}
