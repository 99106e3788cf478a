package usecase

import (
	"context"
	"fmt"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/request"
	"exam-seating/internal/dto/response"
	"exam-seating/internal/mailer"
	"exam-seating/internal/report"
	"exam-seating/internal/seating"
	"exam-seating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatingService interface {
	// Generate runs one complete seating batch and persists it. A new run
	// always mints a new batch id; existing batches are never touched.
	Generate(ctx context.Context, req *request.GenerateRequest) (*response.GenerateResponse, error)
	GetSeating(ctx context.Context, batchID string) (*response.BatchSeatingResponse, error)
	// BuildPDF renders one room (roomNo set) or the whole batch (roomNo empty).
	BuildPDF(ctx context.Context, batchID, roomNo string) ([]byte, error)
	EmailSeating(ctx context.Context, batchID string, req *request.EmailSeatingRequest) error
}

type seatingService struct {
	repo    *repository.Repository
	config  *utils.Config
	builder *report.Builder
	mail    *mailer.Mailer
	log     *zap.Logger
}

func NewSeatingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) SeatingService {
	return &seatingService{
		repo:    repo,
		config:  config,
		builder: report.NewBuilder(config.App.InstituteName),
		mail:    mailer.New(config.Email, log),
		log:     log.With(zap.String("service", "seating")),
	}
}

func (s *seatingService) Generate(ctx context.Context, req *request.GenerateRequest) (*response.GenerateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Generate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Resolve rooms, keeping the selection order.
	classrooms, err := s.repo.Classroom.FindActiveByRoomNos(ctx, req.Rooms)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	if len(classrooms) == 0 {
		return nil, seating.ErrNoRooms
	}

	rooms := make([]seating.Room, 0, len(classrooms))
	for _, room := range classrooms {
		rooms = append(rooms, seating.Room{
			RoomNo:    room.RoomNo,
			BlockName: room.BlockName,
			FloorName: room.FloorName,
			Capacity:  room.Capacity,
		})
	}

	// Load each selected cohort, deduplicating repeated selections.
	var groups []seating.Group
	studentsByGroup := map[seating.Group][]*seating.Student{}
	for _, sel := range req.Groups {
		group := seating.Group{Branch: sel.Branch, Year: sel.Year}
		if _, seen := studentsByGroup[group]; seen {
			continue
		}
		eligible, err := s.repo.Student.FindEligible(ctx, group.Branch, group.Year)
		if err != nil {
			return nil, fmt.Errorf("find eligible students: %w", err)
		}
		pool := make([]*seating.Student, 0, len(eligible))
		for _, st := range eligible {
			pool = append(pool, &seating.Student{
				ID:     st.ID,
				Name:   st.Name,
				RollNo: st.RollNo,
				Branch: st.Branch,
				Year:   st.Year,
			})
		}
		groups = append(groups, group)
		studentsByGroup[group] = pool
	}

	result, err := seating.GenerateBatch(seating.BatchParams{
		ExamType:        req.ExamType,
		Groups:          groups,
		Rooms:           rooms,
		StudentsByGroup: studentsByGroup,
	})
	if err != nil {
		s.log.Warn("Batch generation rejected", zap.Error(err), zap.String("exam_type", req.ExamType))
		return nil, err
	}

	// Persist one row per non-empty seat; empty seats stay derived.
	now := time.Now()
	var records []*entity.SeatingRecord
	for _, seat := range result.Seats() {
		if seat.StudentOne == nil {
			continue
		}
		rec := &entity.SeatingRecord{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BatchID:      result.BatchID,
			ExamType:     result.ExamType,
			Year:         seat.StudentOne.Year,
			RoomNo:       seat.RoomNo,
			SeatLabel:    seat.SeatLabel,
			StudentOneID: seat.StudentOne.ID,
		}
		if seat.StudentTwo != nil {
			twoID := seat.StudentTwo.ID
			rec.StudentTwoID = &twoID
		}
		records = append(records, rec)
	}
	if err := s.repo.Seating.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("persist seating batch: %w", err)
	}

	if err := s.saveInvigilators(ctx, result.BatchID, req); err != nil {
		return nil, err
	}

	s.log.Info("Seating batch generated",
		zap.String("batch_id", result.BatchID.String()),
		zap.String("exam_type", result.ExamType),
		zap.Int("rooms", len(result.Rooms)),
		zap.Int("seats_filled", result.Stats.SeatsFilled),
		zap.Int("empty_seats", result.Stats.EmptySeats),
		zap.Int("students_assigned", result.Stats.TotalStudents),
	)

	return &response.GenerateResponse{
		BatchID:  result.BatchID.String(),
		ExamType: result.ExamType,
		Stats:    toStatsResponse(result.Stats),
	}, nil
}

// saveInvigilators records an explicit room mapping verbatim, or falls back
// to distributing a flat list round-robin. Decoupled from seat computation.
func (s *seatingService) saveInvigilators(ctx context.Context, batchID uuid.UUID, req *request.GenerateRequest) error {
	byRoom := map[string][]uuid.UUID{}

	if len(req.InvigilatorMap) > 0 {
		for roomNo, ids := range req.InvigilatorMap {
			for _, idStr := range ids {
				id, err := uuid.Parse(idStr)
				if err != nil {
					return fmt.Errorf("invalid invigilator ID format %s: %w", idStr, err)
				}
				byRoom[roomNo] = append(byRoom[roomNo], id)
			}
		}
	} else if len(req.Invigilators) > 0 {
		ids := make([]uuid.UUID, 0, len(req.Invigilators))
		for _, idStr := range req.Invigilators {
			id, err := uuid.Parse(idStr)
			if err != nil {
				return fmt.Errorf("invalid invigilator ID format %s: %w", idStr, err)
			}
			ids = append(ids, id)
		}
		byRoom = seating.DistributeInvigilators(req.Rooms, ids)
	}

	if len(byRoom) == 0 {
		return nil
	}
	if err := s.repo.Seating.SaveRoomInvigilators(ctx, batchID, byRoom); err != nil {
		return fmt.Errorf("save invigilators: %w", err)
	}
	return nil
}

// batchView is the reconstructed layout shared by the JSON and PDF readers.
type batchView struct {
	batchID  uuid.UUID
	examType string
	rooms    []roomView
}

type roomView struct {
	room         entity.Classroom
	invigilators []*entity.Invigilator
	seats        []*repository.SeatingDetail // occupied only, storage order
}

func (s *seatingService) loadBatch(ctx context.Context, batchIDStr string) (*batchView, error) {
	batchID, err := uuid.Parse(batchIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid batch ID format %s: %w", batchIDStr, err)
	}

	details, err := s.repo.Seating.FindByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load seating batch: %w", err)
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("batch %s not found", batchIDStr)
	}

	// Group seats per room in first-seen order.
	var roomNos []string
	seatsByRoom := map[string][]*repository.SeatingDetail{}
	for _, d := range details {
		if _, seen := seatsByRoom[d.RoomNo]; !seen {
			roomNos = append(roomNos, d.RoomNo)
		}
		seatsByRoom[d.RoomNo] = append(seatsByRoom[d.RoomNo], d)
	}

	classrooms, err := s.repo.Classroom.FindActiveByRoomNos(ctx, roomNos)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	roomByNo := map[string]*entity.Classroom{}
	for _, room := range classrooms {
		roomByNo[room.RoomNo] = room
	}

	invigilators, err := s.repo.Seating.FindRoomInvigilators(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load invigilators: %w", err)
	}

	view := &batchView{batchID: batchID, examType: details[0].ExamType}
	for _, roomNo := range roomNos {
		seats := seatsByRoom[roomNo]
		room := roomByNo[roomNo]
		if room == nil {
			// Room removed since generation; fall back to a layout that at
			// least covers the persisted seats.
			room = &entity.Classroom{RoomNo: roomNo, Capacity: len(seats)}
		}
		view.rooms = append(view.rooms, roomView{
			room:         *room,
			invigilators: invigilators[roomNo],
			seats:        seats,
		})
	}
	return view, nil
}

func (s *seatingService) GetSeating(ctx context.Context, batchID string) (*response.BatchSeatingResponse, error) {
	view, err := s.loadBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	out := &response.BatchSeatingResponse{
		BatchID:  view.batchID.String(),
		ExamType: view.examType,
	}
	for _, rv := range view.rooms {
		roomResp := response.RoomSeatingResponse{
			RoomNo:       rv.room.RoomNo,
			BlockName:    rv.room.BlockName,
			FloorName:    rv.room.FloorName,
			Capacity:     rv.room.Capacity,
			Invigilators: []response.InvigilatorResponse{},
			Seats:        reconstructSeats(rv),
		}
		for _, inv := range rv.invigilators {
			roomResp.Invigilators = append(roomResp.Invigilators, response.InvigilatorResponse{
				ID:          inv.ID.String(),
				Name:        inv.Name,
				Department:  inv.Department,
				Designation: inv.Designation,
			})
		}
		out.Rooms = append(out.Rooms, roomResp)
	}
	return out, nil
}

// reconstructSeats walks the room's full canonical label sequence and fills
// labels absent from storage with empty seats.
func reconstructSeats(rv roomView) []response.SeatResponse {
	byLabel := map[string]*repository.SeatingDetail{}
	for _, seat := range rv.seats {
		byLabel[seat.SeatLabel] = seat
	}

	labels := seating.BuildSeatLabels(rv.room.Capacity)
	out := make([]response.SeatResponse, 0, len(labels))
	for _, label := range labels {
		seat := byLabel[label]
		if seat == nil {
			out = append(out, response.SeatResponse{SeatLabel: label})
			continue
		}
		resp := response.SeatResponse{
			SeatLabel:  label,
			StudentOne: toOccupantResponse(&seat.StudentOne),
		}
		if seat.StudentTwo != nil {
			resp.StudentTwo = toOccupantResponse(seat.StudentTwo)
		}
		out = append(out, resp)
	}
	return out
}

func toOccupantResponse(st *entity.Student) *response.SeatOccupantResponse {
	return &response.SeatOccupantResponse{
		ID:     st.ID.String(),
		Name:   st.Name,
		RollNo: st.RollNo,
		Branch: st.Branch,
		Year:   st.Year,
	}
}

func (s *seatingService) BuildPDF(ctx context.Context, batchID, roomNo string) ([]byte, error) {
	view, err := s.loadBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	var payloads []report.RoomPayload
	for _, rv := range view.rooms {
		if roomNo != "" && rv.room.RoomNo != roomNo {
			continue
		}
		payloads = append(payloads, toRoomPayload(view.examType, rv))
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("room %s not found in batch %s", roomNo, batchID)
	}

	pdf, err := s.builder.BuildCombinedPDF(payloads)
	if err != nil {
		s.log.Error("Failed to render seating PDF",
			zap.Error(err),
			zap.String("batch_id", batchID),
		)
		return nil, fmt.Errorf("render seating pdf: %w", err)
	}
	return pdf, nil
}

func toRoomPayload(examType string, rv roomView) report.RoomPayload {
	payload := report.RoomPayload{
		RoomNo:   rv.room.RoomNo,
		ExamType: examType,
		Capacity: rv.room.Capacity,
	}
	for _, inv := range rv.invigilators {
		label := inv.Name
		if inv.Designation != "" {
			label += " (" + inv.Designation + ")"
		}
		label += " - " + inv.Department
		payload.Invigilators = append(payload.Invigilators, label)
	}
	for _, seat := range rv.seats {
		rseat := report.Seat{
			Label: seat.SeatLabel,
			One: &report.Occupant{
				Name:   seat.StudentOne.Name,
				RollNo: seat.StudentOne.RollNo,
				Branch: seat.StudentOne.Branch,
				Year:   seat.StudentOne.Year,
			},
		}
		if seat.StudentTwo != nil {
			rseat.Two = &report.Occupant{
				Name:   seat.StudentTwo.Name,
				RollNo: seat.StudentTwo.RollNo,
				Branch: seat.StudentTwo.Branch,
				Year:   seat.StudentTwo.Year,
			}
		}
		payload.Seats = append(payload.Seats, rseat)
	}
	return payload
}

func (s *seatingService) EmailSeating(ctx context.Context, batchID string, req *request.EmailSeatingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Email seating validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pdf, err := s.BuildPDF(ctx, batchID, "")
	if err != nil {
		return err
	}

	subject := "Seating Plan " + batchID
	body := "Please find the generated seating plan attached."
	filename := "seating-plan-" + batchID + ".pdf"
	if err := s.mail.SendSeatingPlan(req.Recipients, subject, body, filename, pdf); err != nil {
		return fmt.Errorf("email seating plan: %w", err)
	}

	s.log.Info("Seating plan dispatched",
		zap.String("batch_id", batchID),
		zap.Int("recipients", len(req.Recipients)),
	)
	return nil
}

func toStatsResponse(stats seating.BatchStats) response.BatchStatsResponse {
	out := response.BatchStatsResponse{
		TotalStudents: stats.TotalStudents,
		TotalSeats:    stats.TotalSeats,
		SeatsFilled:   stats.SeatsFilled,
		EmptySeats:    stats.EmptySeats,
	}
	for _, g := range stats.PerGroup {
		out.PerGroup = append(out.PerGroup, response.GroupStatsResponse{
			Branch:     g.Group.Branch,
			Year:       g.Group.Year,
			Total:      g.Total,
			Assigned:   g.Assigned,
			Unassigned: g.Unassigned,
		})
	}
	return out
}
