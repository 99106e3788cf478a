package usecase

import (
	"context"
	"testing"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/request"
	"exam-seating/internal/seating"
	"exam-seating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockClassroomRepo serves a fixed set of active rooms.
type mockClassroomRepo struct {
	rooms []*entity.Classroom
}

func (m *mockClassroomRepo) Upsert(ctx context.Context, room *entity.Classroom) error { return nil }
func (m *mockClassroomRepo) FindByRoomNo(ctx context.Context, roomNo string) (*entity.Classroom, error) {
	for _, r := range m.rooms {
		if r.RoomNo == roomNo {
			return r, nil
		}
	}
	return nil, nil
}
func (m *mockClassroomRepo) FindAllActive(ctx context.Context) ([]*entity.Classroom, error) {
	return m.rooms, nil
}
func (m *mockClassroomRepo) FindActiveByRoomNos(ctx context.Context, roomNos []string) ([]*entity.Classroom, error) {
	var out []*entity.Classroom
	for _, no := range roomNos {
		for _, r := range m.rooms {
			if r.RoomNo == no {
				out = append(out, r)
			}
		}
	}
	return out, nil
}
func (m *mockClassroomRepo) Deactivate(ctx context.Context, roomNo string) error { return nil }

// mockStudentRepo serves eligible students keyed by branch.
type mockStudentRepo struct {
	eligibleByBranch map[string][]*entity.Student
}

func (m *mockStudentRepo) CreateIfAbsent(ctx context.Context, student *entity.Student) (bool, error) {
	return true, nil
}
func (m *mockStudentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return nil, nil
}
func (m *mockStudentRepo) FindFiltered(ctx context.Context, branch, year, status string) ([]*entity.Student, error) {
	return nil, nil
}
func (m *mockStudentRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Student, error) {
	return nil, nil
}
func (m *mockStudentRepo) FindEligible(ctx context.Context, branch, year string) ([]*entity.Student, error) {
	return m.eligibleByBranch[branch], nil
}
func (m *mockStudentRepo) DistinctBranches(ctx context.Context, year string) ([]string, error) {
	return nil, nil
}
func (m *mockStudentRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	return nil
}
func (m *mockStudentRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return nil
}
func (m *mockStudentRepo) ApproveAll(ctx context.Context) (int64, error) { return 0, nil }

// mockSeatingRepo records writes and serves canned reads.
type mockSeatingRepo struct {
	savedRecords      []*entity.SeatingRecord
	savedInvigilators map[string][]uuid.UUID
	details           []*repository.SeatingDetail
	invigilators      map[string][]*entity.Invigilator
}

func (m *mockSeatingRepo) CreateBatch(ctx context.Context, records []*entity.SeatingRecord) error {
	m.savedRecords = records
	return nil
}
func (m *mockSeatingRepo) FindByBatchID(ctx context.Context, batchID uuid.UUID) ([]*repository.SeatingDetail, error) {
	return m.details, nil
}
func (m *mockSeatingRepo) SaveRoomInvigilators(ctx context.Context, batchID uuid.UUID, byRoom map[string][]uuid.UUID) error {
	m.savedInvigilators = byRoom
	return nil
}
func (m *mockSeatingRepo) FindRoomInvigilators(ctx context.Context, batchID uuid.UUID) (map[string][]*entity.Invigilator, error) {
	return m.invigilators, nil
}

func eligibleStudent(rollNo, branch string) *entity.Student {
	return &entity.Student{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:     "Student " + rollNo,
		RollNo:   rollNo,
		Branch:   branch,
		Year:     "2",
		Approved: true,
		Active:   true,
	}
}

func newTestSeatingService(rooms *mockClassroomRepo, students *mockStudentRepo, seats *mockSeatingRepo) SeatingService {
	repo := &repository.Repository{
		Classroom: rooms,
		Student:   students,
		Seating:   seats,
	}
	config := &utils.Config{
		App: utils.AppConfig{InstituteName: "Test Institute of Technology"},
	}
	return NewSeatingService(repo, config, zap.NewNop())
}

func TestSeatingServiceGenerate(t *testing.T) {
	rooms := &mockClassroomRepo{rooms: []*entity.Classroom{
		{RoomNo: "R101", BlockName: "A", FloorName: "1", Capacity: 6, Active: true},
	}}
	students := &mockStudentRepo{eligibleByBranch: map[string][]*entity.Student{
		"CSE": {eligibleStudent("CS100", "CSE"), eligibleStudent("CS300", "CSE"), eligibleStudent("CS500", "CSE")},
		"ECE": {eligibleStudent("EC700", "ECE"), eligibleStudent("EC900", "ECE"), eligibleStudent("EC1100", "ECE")},
	}}
	seats := &mockSeatingRepo{}
	service := newTestSeatingService(rooms, students, seats)

	invigilator := uuid.New()
	result, err := service.Generate(context.Background(), &request.GenerateRequest{
		ExamType: seating.ExamTypeSemester,
		Groups: []request.GroupSelection{
			{Branch: "CSE", Year: "2"},
			{Branch: "ECE", Year: "2"},
		},
		Rooms:        []string{"R101"},
		Invigilators: []string{invigilator.String()},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(result.BatchID)
	require.NoError(t, err, "batch id must be a UUID")
	assert.Equal(t, seating.ExamTypeSemester, result.ExamType)
	assert.Equal(t, 6, result.Stats.TotalStudents)
	assert.Equal(t, 6, result.Stats.SeatsFilled)
	assert.Equal(t, 0, result.Stats.EmptySeats)

	// Every filled seat became one row.
	require.Len(t, seats.savedRecords, 6)
	for _, rec := range seats.savedRecords {
		assert.Equal(t, result.BatchID, rec.BatchID.String())
		assert.Equal(t, "R101", rec.RoomNo)
		assert.Nil(t, rec.StudentTwoID, "semester mode is single occupancy")
	}

	require.Contains(t, seats.savedInvigilators, "R101")
	assert.Equal(t, []uuid.UUID{invigilator}, seats.savedInvigilators["R101"])
}

func TestSeatingServiceGenerateNoMatchingRooms(t *testing.T) {
	service := newTestSeatingService(&mockClassroomRepo{}, &mockStudentRepo{}, &mockSeatingRepo{})

	_, err := service.Generate(context.Background(), &request.GenerateRequest{
		ExamType: seating.ExamTypeSemester,
		Groups:   []request.GroupSelection{{Branch: "CSE", Year: "2"}},
		Rooms:    []string{"R999"},
	})
	assert.ErrorIs(t, err, seating.ErrNoRooms)
}

func TestSeatingServiceGenerateRejectsBadExamType(t *testing.T) {
	service := newTestSeatingService(&mockClassroomRepo{}, &mockStudentRepo{}, &mockSeatingRepo{})

	_, err := service.Generate(context.Background(), &request.GenerateRequest{
		ExamType: "FINAL",
		Groups:   []request.GroupSelection{{Branch: "CSE", Year: "2"}},
		Rooms:    []string{"R101"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func seatingFixture(batchID uuid.UUID) (*mockClassroomRepo, *mockSeatingRepo) {
	one := eligibleStudent("CS100", "CSE")
	two := eligibleStudent("EC700", "ECE")
	rooms := &mockClassroomRepo{rooms: []*entity.Classroom{
		{RoomNo: "R101", BlockName: "A", FloorName: "1", Capacity: 4, Active: true},
	}}
	seats := &mockSeatingRepo{
		details: []*repository.SeatingDetail{
			{BatchID: batchID, ExamType: seating.ExamTypeSemester, Year: "2", RoomNo: "R101", SeatLabel: "A0", StudentOne: *one},
			{BatchID: batchID, ExamType: seating.ExamTypeSemester, Year: "2", RoomNo: "R101", SeatLabel: "A2", StudentOne: *two},
		},
		invigilators: map[string][]*entity.Invigilator{
			"R101": {{
				Base:        entity.Base{ID: uuid.New()},
				Name:        "Dr. Rao",
				Department:  "CSE",
				Designation: "Professor",
				Active:      true,
			}},
		},
	}
	return rooms, seats
}

func TestSeatingServiceGetSeatingReconstructsEmptySeats(t *testing.T) {
	batchID := uuid.New()
	rooms, seats := seatingFixture(batchID)
	service := newTestSeatingService(rooms, &mockStudentRepo{}, seats)

	batch, err := service.GetSeating(context.Background(), batchID.String())
	require.NoError(t, err)
	assert.Equal(t, batchID.String(), batch.BatchID)
	require.Len(t, batch.Rooms, 1)

	room := batch.Rooms[0]
	assert.Equal(t, "R101", room.RoomNo)
	require.Len(t, room.Seats, 4, "capacity seats, occupied or not")

	assert.Equal(t, "A0", room.Seats[0].SeatLabel)
	require.NotNil(t, room.Seats[0].StudentOne)
	assert.Equal(t, "CS100", room.Seats[0].StudentOne.RollNo)

	assert.Nil(t, room.Seats[1].StudentOne, "A1 was never persisted")
	assert.NotNil(t, room.Seats[2].StudentOne)
	assert.Nil(t, room.Seats[3].StudentOne)

	require.Len(t, room.Invigilators, 1)
	assert.Equal(t, "Dr. Rao", room.Invigilators[0].Name)
}

func TestSeatingServiceGetSeatingUnknownBatch(t *testing.T) {
	service := newTestSeatingService(&mockClassroomRepo{}, &mockStudentRepo{}, &mockSeatingRepo{})

	_, err := service.GetSeating(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSeatingServiceGetSeatingBadBatchID(t *testing.T) {
	service := newTestSeatingService(&mockClassroomRepo{}, &mockStudentRepo{}, &mockSeatingRepo{})

	_, err := service.GetSeating(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid batch ID")
}

func TestSeatingServiceBuildPDF(t *testing.T) {
	batchID := uuid.New()
	rooms, seats := seatingFixture(batchID)
	service := newTestSeatingService(rooms, &mockStudentRepo{}, seats)

	pdf, err := service.BuildPDF(context.Background(), batchID.String(), "")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestSeatingServiceBuildPDFUnknownRoom(t *testing.T) {
	batchID := uuid.New()
	rooms, seats := seatingFixture(batchID)
	service := newTestSeatingService(rooms, &mockStudentRepo{}, seats)

	_, err := service.BuildPDF(context.Background(), batchID.String(), "R999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
