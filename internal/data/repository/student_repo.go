package repository

import (
	"context"
	"fmt"

	"exam-seating/internal/data/entity"
	"exam-seating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StudentRepository interface {
	// Returns false when the roll number already existed and nothing was inserted.
	CreateIfAbsent(ctx context.Context, student *entity.Student) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindFiltered(ctx context.Context, branch, year, status string) ([]*entity.Student, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Student, error)

	// Eligible = active, approved, not blocked, matching one (branch, year) group.
	FindEligible(ctx context.Context, branch, year string) ([]*entity.Student, error)
	DistinctBranches(ctx context.Context, year string) ([]string, error)

	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	ApproveAll(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentRepository(db database.PgxIface, log *zap.Logger) StudentRepository {
	return &studentRepository{
		db:  db,
		log: log.With(zap.String("repository", "student")),
	}
}

const studentColumns = `id, name, roll_no, branch, year, approved, blocked, active, created_at`

func scanStudent(row pgx.Row) (*entity.Student, error) {
	var s entity.Student
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.RollNo,
		&s.Branch,
		&s.Year,
		&s.Approved,
		&s.Blocked,
		&s.Active,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) CreateIfAbsent(ctx context.Context, student *entity.Student) (bool, error) {
	query := `
		INSERT INTO students (id, name, roll_no, branch, year, approved, blocked, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (roll_no) DO NOTHING
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		student.ID,
		student.Name,
		student.RollNo,
		student.Branch,
		student.Year,
		student.Approved,
		student.Blocked,
		student.Active,
		student.CreatedAt,
	).Scan(&id)

	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("roll_no", student.RollNo),
		)
		return false, fmt.Errorf("failed to create student: %w", err)
	}

	return true, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND active = TRUE`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by ID",
			zap.Error(err),
			zap.String("student_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	return student, nil
}

func (r *studentRepository) FindFiltered(ctx context.Context, branch, year, status string) ([]*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE active = TRUE`
	args := []any{}

	if branch != "" {
		args = append(args, branch)
		query += fmt.Sprintf(" AND branch = $%d", len(args))
	}
	if year != "" {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	switch status {
	case entity.StudentStatusApproved:
		query += " AND approved = TRUE AND blocked = FALSE"
	case entity.StudentStatusBlocked:
		query += " AND blocked = TRUE"
	case entity.StudentStatusPending:
		query += " AND approved = FALSE AND blocked = FALSE"
	}
	query += " ORDER BY roll_no"

	return r.queryStudents(ctx, query, args...)
}

func (r *studentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Student, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Student{}, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ANY($1)`
	students, err := r.queryStudents(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]*entity.Student, len(students))
	for _, s := range students {
		out[s.ID] = s
	}
	return out, nil
}

func (r *studentRepository) FindEligible(ctx context.Context, branch, year string) ([]*entity.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE active = TRUE AND approved = TRUE AND blocked = FALSE
		  AND branch = $1 AND year = $2
		ORDER BY roll_no
	`

	return r.queryStudents(ctx, query, branch, year)
}

func (r *studentRepository) DistinctBranches(ctx context.Context, year string) ([]string, error) {
	query := `SELECT DISTINCT branch FROM students WHERE active = TRUE`
	args := []any{}
	if year != "" {
		args = append(args, year)
		query += " AND year = $1"
	}
	query += " ORDER BY branch"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list branches", zap.Error(err), zap.String("year", year))
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	return branches, nil
}

func (r *studentRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `UPDATE students SET approved = $2, blocked = FALSE WHERE id = $1 AND active = TRUE`

	result, err := r.db.Exec(ctx, query, id, approved)
	if err != nil {
		r.log.Error("Failed to update approval",
			zap.Error(err),
			zap.String("student_id", id.String()),
		)
		return fmt.Errorf("failed to update approval: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

func (r *studentRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	query := `UPDATE students SET blocked = $2 WHERE id = $1 AND active = TRUE`

	result, err := r.db.Exec(ctx, query, id, blocked)
	if err != nil {
		r.log.Error("Failed to update block flag",
			zap.Error(err),
			zap.String("student_id", id.String()),
		)
		return fmt.Errorf("failed to update block flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

func (r *studentRepository) ApproveAll(ctx context.Context) (int64, error) {
	query := `UPDATE students SET approved = TRUE WHERE active = TRUE AND blocked = FALSE AND approved = FALSE`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to approve all students", zap.Error(err))
		return 0, fmt.Errorf("failed to approve all students: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *studentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*entity.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query students", zap.Error(err))
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			r.log.Error("Failed to scan student row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}
