package repository

import (
	"context"
	"fmt"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatingDetail is one persisted seat with its occupants resolved. Only
// non-empty seats exist in storage; readers rebuild empty seats from the
// room capacity's label sequence.
type SeatingDetail struct {
	BatchID    uuid.UUID
	ExamType   string
	Year       string
	RoomNo     string
	SeatLabel  string
	StudentOne entity.Student
	StudentTwo *entity.Student
}

type SeatingRepository interface {
	CreateBatch(ctx context.Context, records []*entity.SeatingRecord) error
	FindByBatchID(ctx context.Context, batchID uuid.UUID) ([]*SeatingDetail, error)
	SaveRoomInvigilators(ctx context.Context, batchID uuid.UUID, byRoom map[string][]uuid.UUID) error
	FindRoomInvigilators(ctx context.Context, batchID uuid.UUID) (map[string][]*entity.Invigilator, error)
}

type seatingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatingRepository(db database.PgxIface, log *zap.Logger) SeatingRepository {
	return &seatingRepository{
		db:  db,
		log: log.With(zap.String("repository", "seating")),
	}
}

func (r *seatingRepository) CreateBatch(ctx context.Context, records []*entity.SeatingRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seating (id, batch_id, exam_type, year, room_no, seat_label, student_one_id, student_two_id, created_at) VALUES `
	args := []any{}

	for i, rec := range records {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*9+1, i*9+2, i*9+3, i*9+4, i*9+5, i*9+6, i*9+7, i*9+8, i*9+9)

		args = append(args,
			rec.ID,
			rec.BatchID,
			rec.ExamType,
			rec.Year,
			rec.RoomNo,
			rec.SeatLabel,
			rec.StudentOneID,
			rec.StudentTwoID,
			rec.CreatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create seating batch",
			zap.Error(err),
			zap.Int("count", len(records)),
		)
		return fmt.Errorf("failed to create seating batch: %w", err)
	}

	return nil
}

func (r *seatingRepository) FindByBatchID(ctx context.Context, batchID uuid.UUID) ([]*SeatingDetail, error) {
	query := `
		SELECT st.batch_id, st.exam_type, st.year, st.room_no, st.seat_label,
		       s1.id, s1.name, s1.roll_no, s1.branch, s1.year,
		       s2.id, s2.name, s2.roll_no, s2.branch, s2.year
		FROM seating st
		JOIN students s1 ON s1.id = st.student_one_id
		LEFT JOIN students s2 ON s2.id = st.student_two_id
		WHERE st.batch_id = $1
		ORDER BY st.room_no, st.id
	`

	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		r.log.Error("Failed to query seating batch",
			zap.Error(err),
			zap.String("batch_id", batchID.String()),
		)
		return nil, fmt.Errorf("failed to query seating batch: %w", err)
	}
	defer rows.Close()

	var details []*SeatingDetail
	for rows.Next() {
		var d SeatingDetail
		var twoID *uuid.UUID
		var twoName, twoRoll, twoBranch, twoYear *string
		err := rows.Scan(
			&d.BatchID,
			&d.ExamType,
			&d.Year,
			&d.RoomNo,
			&d.SeatLabel,
			&d.StudentOne.ID,
			&d.StudentOne.Name,
			&d.StudentOne.RollNo,
			&d.StudentOne.Branch,
			&d.StudentOne.Year,
			&twoID,
			&twoName,
			&twoRoll,
			&twoBranch,
			&twoYear,
		)
		if err != nil {
			r.log.Error("Failed to scan seating row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seating row: %w", err)
		}
		if twoID != nil {
			d.StudentTwo = &entity.Student{
				Base:   entity.Base{ID: *twoID},
				Name:   *twoName,
				RollNo: *twoRoll,
				Branch: *twoBranch,
				Year:   *twoYear,
			}
		}
		details = append(details, &d)
	}

	return details, nil
}

func (r *seatingRepository) SaveRoomInvigilators(ctx context.Context, batchID uuid.UUID, byRoom map[string][]uuid.UUID) error {
	now := time.Now()
	for roomNo, ids := range byRoom {
		for _, invID := range ids {
			query := `
				INSERT INTO room_invigilators (id, batch_id, room_no, invigilator_id, created_at)
				VALUES ($1, $2, $3, $4, $5)
			`
			if _, err := r.db.Exec(ctx, query, uuid.New(), batchID, roomNo, invID, now); err != nil {
				r.log.Error("Failed to save room invigilator",
					zap.Error(err),
					zap.String("batch_id", batchID.String()),
					zap.String("room_no", roomNo),
				)
				return fmt.Errorf("failed to save room invigilator: %w", err)
			}
		}
	}
	return nil
}

func (r *seatingRepository) FindRoomInvigilators(ctx context.Context, batchID uuid.UUID) (map[string][]*entity.Invigilator, error) {
	query := `
		SELECT ri.room_no, i.id, i.name, i.department, i.designation, i.active, i.created_at
		FROM room_invigilators ri
		JOIN invigilators i ON i.id = ri.invigilator_id
		WHERE ri.batch_id = $1
		ORDER BY ri.room_no, i.name
	`

	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		r.log.Error("Failed to query room invigilators",
			zap.Error(err),
			zap.String("batch_id", batchID.String()),
		)
		return nil, fmt.Errorf("failed to query room invigilators: %w", err)
	}
	defer rows.Close()

	out := map[string][]*entity.Invigilator{}
	for rows.Next() {
		var roomNo string
		var inv entity.Invigilator
		err := rows.Scan(
			&roomNo,
			&inv.ID,
			&inv.Name,
			&inv.Department,
			&inv.Designation,
			&inv.Active,
			&inv.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room invigilator row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan room invigilator: %w", err)
		}
		out[roomNo] = append(out[roomNo], &inv)
	}

	return out, nil
}
