package repository

import (
	"context"
	"fmt"

	"exam-seating/internal/data/entity"
	"exam-seating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TimetableRepository interface {
	Create(ctx context.Context, tt *entity.Timetable) error
	FindFiltered(ctx context.Context, department, year, examType string) ([]*entity.Timetable, error)
	Update(ctx context.Context, tt *entity.Timetable) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type timetableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimetableRepository(db database.PgxIface, log *zap.Logger) TimetableRepository {
	return &timetableRepository{
		db:  db,
		log: log.With(zap.String("repository", "timetable")),
	}
}

func (r *timetableRepository) Create(ctx context.Context, tt *entity.Timetable) error {
	query := `
		INSERT INTO timetables (id, department, year, subject_name, exam_date, start_time, end_time, exam_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		tt.ID,
		tt.Department,
		tt.Year,
		tt.SubjectName,
		tt.ExamDate,
		tt.StartTime,
		tt.EndTime,
		tt.ExamType,
		tt.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create timetable entry",
			zap.Error(err),
			zap.String("subject", tt.SubjectName),
		)
		return fmt.Errorf("failed to create timetable entry: %w", err)
	}

	return nil
}

func (r *timetableRepository) FindFiltered(ctx context.Context, department, year, examType string) ([]*entity.Timetable, error) {
	query := `
		SELECT id, department, year, subject_name, exam_date,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		       exam_type, created_at
		FROM timetables
		WHERE TRUE
	`
	args := []any{}

	if department != "" {
		args = append(args, department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if year != "" {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if examType != "" {
		args = append(args, examType)
		query += fmt.Sprintf(" AND exam_type = $%d", len(args))
	}
	query += " ORDER BY exam_date, start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query timetables", zap.Error(err))
		return nil, fmt.Errorf("failed to query timetables: %w", err)
	}
	defer rows.Close()

	var timetables []*entity.Timetable
	for rows.Next() {
		var tt entity.Timetable
		err := rows.Scan(
			&tt.ID,
			&tt.Department,
			&tt.Year,
			&tt.SubjectName,
			&tt.ExamDate,
			&tt.StartTime,
			&tt.EndTime,
			&tt.ExamType,
			&tt.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan timetable row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan timetable: %w", err)
		}
		timetables = append(timetables, &tt)
	}

	return timetables, nil
}

func (r *timetableRepository) Update(ctx context.Context, tt *entity.Timetable) error {
	query := `
		UPDATE timetables
		SET department = $2, year = $3, subject_name = $4, exam_date = $5,
		    start_time = $6, end_time = $7, exam_type = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tt.ID,
		tt.Department,
		tt.Year,
		tt.SubjectName,
		tt.ExamDate,
		tt.StartTime,
		tt.EndTime,
		tt.ExamType,
	)
	if err != nil {
		r.log.Error("Failed to update timetable entry",
			zap.Error(err),
			zap.String("timetable_id", tt.ID.String()),
		)
		return fmt.Errorf("failed to update timetable entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("timetable entry not found")
	}

	return nil
}

func (r *timetableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM timetables WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete timetable entry",
			zap.Error(err),
			zap.String("timetable_id", id.String()),
		)
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("timetable entry not found")
	}

	return nil
}
