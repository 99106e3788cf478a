package repository

import (
	"context"
	"fmt"

	"exam-seating/internal/data/entity"
	"exam-seating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassroomRepository interface {
	Upsert(ctx context.Context, room *entity.Classroom) error
	FindByRoomNo(ctx context.Context, roomNo string) (*entity.Classroom, error)
	FindAllActive(ctx context.Context) ([]*entity.Classroom, error)
	// FindActiveByRoomNos keeps the caller's room order for rooms that exist.
	FindActiveByRoomNos(ctx context.Context, roomNos []string) ([]*entity.Classroom, error)
	Deactivate(ctx context.Context, roomNo string) error
}

type classroomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassroomRepository(db database.PgxIface, log *zap.Logger) ClassroomRepository {
	return &classroomRepository{
		db:  db,
		log: log.With(zap.String("repository", "classroom")),
	}
}

func (r *classroomRepository) Upsert(ctx context.Context, room *entity.Classroom) error {
	query := `
		INSERT INTO classrooms (room_no, block_name, floor_name, capacity, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (room_no) DO UPDATE
		SET block_name = EXCLUDED.block_name,
		    floor_name = EXCLUDED.floor_name,
		    capacity = EXCLUDED.capacity,
		    active = TRUE
	`

	_, err := r.db.Exec(ctx, query, room.RoomNo, room.BlockName, room.FloorName, room.Capacity)
	if err != nil {
		r.log.Error("Failed to upsert classroom",
			zap.Error(err),
			zap.String("room_no", room.RoomNo),
		)
		return fmt.Errorf("failed to upsert classroom: %w", err)
	}

	return nil
}

func (r *classroomRepository) FindByRoomNo(ctx context.Context, roomNo string) (*entity.Classroom, error) {
	query := `
		SELECT room_no, block_name, floor_name, capacity, active
		FROM classrooms
		WHERE room_no = $1 AND active = TRUE
	`

	var room entity.Classroom
	err := r.db.QueryRow(ctx, query, roomNo).Scan(
		&room.RoomNo,
		&room.BlockName,
		&room.FloorName,
		&room.Capacity,
		&room.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find classroom",
			zap.Error(err),
			zap.String("room_no", roomNo),
		)
		return nil, fmt.Errorf("failed to find classroom: %w", err)
	}

	return &room, nil
}

func (r *classroomRepository) FindAllActive(ctx context.Context) ([]*entity.Classroom, error) {
	query := `
		SELECT room_no, block_name, floor_name, capacity, active
		FROM classrooms
		WHERE active = TRUE
		ORDER BY room_no
	`

	return r.queryClassrooms(ctx, query)
}

func (r *classroomRepository) FindActiveByRoomNos(ctx context.Context, roomNos []string) ([]*entity.Classroom, error) {
	if len(roomNos) == 0 {
		return []*entity.Classroom{}, nil
	}

	query := `
		SELECT room_no, block_name, floor_name, capacity, active
		FROM classrooms
		WHERE room_no = ANY($1) AND active = TRUE
	`

	rooms, err := r.queryClassrooms(ctx, query, roomNos)
	if err != nil {
		return nil, err
	}

	// Preserve the order rooms were selected in.
	byNo := make(map[string]*entity.Classroom, len(rooms))
	for _, room := range rooms {
		byNo[room.RoomNo] = room
	}
	ordered := make([]*entity.Classroom, 0, len(rooms))
	for _, no := range roomNos {
		if room, ok := byNo[no]; ok {
			ordered = append(ordered, room)
		}
	}

	return ordered, nil
}

func (r *classroomRepository) Deactivate(ctx context.Context, roomNo string) error {
	query := `UPDATE classrooms SET active = FALSE WHERE room_no = $1 AND active = TRUE`

	result, err := r.db.Exec(ctx, query, roomNo)
	if err != nil {
		r.log.Error("Failed to deactivate classroom",
			zap.Error(err),
			zap.String("room_no", roomNo),
		)
		return fmt.Errorf("failed to deactivate classroom: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("classroom not found")
	}

	r.log.Info("Classroom deactivated", zap.String("room_no", roomNo))
	return nil
}

func (r *classroomRepository) queryClassrooms(ctx context.Context, query string, args ...any) ([]*entity.Classroom, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query classrooms", zap.Error(err))
		return nil, fmt.Errorf("failed to query classrooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Classroom
	for rows.Next() {
		var room entity.Classroom
		err := rows.Scan(
			&room.RoomNo,
			&room.BlockName,
			&room.FloorName,
			&room.Capacity,
			&room.Active,
		)
		if err != nil {
			r.log.Error("Failed to scan classroom row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan classroom: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
