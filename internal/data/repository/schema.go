package repository

import (
	"context"
	"fmt"

	"exam-seating/pkg/database"
)

// InitSchema creates every table this service needs. All statements are
// idempotent so startup against an existing database is a no-op.
func InitSchema(ctx context.Context, db database.PgxIface) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			roll_no TEXT NOT NULL UNIQUE,
			branch TEXT NOT NULL,
			year TEXT NOT NULL,
			approved BOOLEAN NOT NULL DEFAULT FALSE,
			blocked BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS classrooms (
			room_no TEXT PRIMARY KEY,
			block_name TEXT NOT NULL DEFAULT 'Unknown Block',
			floor_name TEXT NOT NULL DEFAULT 'Ground Floor',
			capacity INT NOT NULL DEFAULT 30,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS invigilators (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			department TEXT NOT NULL,
			designation TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS room_invigilators (
			id UUID PRIMARY KEY,
			batch_id UUID NOT NULL,
			room_no TEXT NOT NULL,
			invigilator_id UUID NOT NULL REFERENCES invigilators(id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS timetables (
			id UUID PRIMARY KEY,
			department TEXT NOT NULL,
			year TEXT NOT NULL,
			subject_name TEXT NOT NULL,
			exam_date DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			exam_type TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS seating (
			id UUID PRIMARY KEY,
			batch_id UUID NOT NULL,
			exam_type TEXT NOT NULL,
			year TEXT NOT NULL,
			room_no TEXT NOT NULL,
			seat_label TEXT NOT NULL,
			student_one_id UUID NOT NULL REFERENCES students(id),
			student_two_id UUID REFERENCES students(id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_seating_batch ON seating(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_room_invigilators_batch ON room_invigilators(batch_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
