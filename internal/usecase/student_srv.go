package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/response"
	"exam-seating/internal/upload"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StudentService interface {
	// Upload parses a roster file and inserts rows whose roll number is new.
	Upload(ctx context.Context, filename string, file io.Reader) (*response.UploadResponse, error)
	List(ctx context.Context, branch, year, status string) ([]*response.StudentResponse, error)
	Branches(ctx context.Context, year string) ([]string, error)
	Approve(ctx context.Context, id string) error
	Block(ctx context.Context, id string) error
	ApproveAll(ctx context.Context) (int64, error)
}

type studentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStudentService(repo *repository.Repository, log *zap.Logger) StudentService {
	return &studentService{
		repo: repo,
		log:  log.With(zap.String("service", "student")),
	}
}

func (s *studentService) Upload(ctx context.Context, filename string, file io.Reader) (*response.UploadResponse, error) {
	rows, err := upload.ParseStudentFile(filename, file)
	if err != nil {
		s.log.Warn("Roster parse failed", zap.Error(err), zap.String("filename", filename))
		return nil, fmt.Errorf("invalid roster file: %w", err)
	}

	valid, rejects := upload.ValidateRows(rows)

	inserted := 0
	now := time.Now()
	for _, row := range valid {
		student := &entity.Student{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			Name:   row.Name,
			RollNo: row.RollNo,
			Branch: row.Branch,
			Year:   row.Year,
			Active: true,
		}
		created, err := s.repo.Student.CreateIfAbsent(ctx, student)
		if err != nil {
			return nil, fmt.Errorf("insert student: %w", err)
		}
		if created {
			inserted++
		}
	}

	s.log.Info("Roster uploaded",
		zap.String("filename", filename),
		zap.Int("parsed", len(rows)),
		zap.Int("inserted", inserted),
		zap.Int("rejected", len(rejects)),
	)

	return &response.UploadResponse{Inserted: inserted, Rejected: len(rejects)}, nil
}

func (s *studentService) List(ctx context.Context, branch, year, status string) ([]*response.StudentResponse, error) {
	students, err := s.repo.Student.FindFiltered(ctx, branch, year, status)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]*response.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, &response.StudentResponse{
			ID:     st.ID.String(),
			Name:   st.Name,
			RollNo: st.RollNo,
			Branch: st.Branch,
			Year:   st.Year,
			Status: st.Status(),
		})
	}
	return out, nil
}

func (s *studentService) Branches(ctx context.Context, year string) ([]string, error) {
	branches, err := s.repo.Student.DistinctBranches(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return branches, nil
}

func (s *studentService) Approve(ctx context.Context, id string) error {
	studentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid student ID format %s: %w", id, err)
	}
	if err := s.repo.Student.SetApproved(ctx, studentID, true); err != nil {
		return fmt.Errorf("approve student: %w", err)
	}

	s.log.Info("Student approved", zap.String("student_id", id))
	return nil
}

func (s *studentService) Block(ctx context.Context, id string) error {
	studentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid student ID format %s: %w", id, err)
	}
	if err := s.repo.Student.SetBlocked(ctx, studentID, true); err != nil {
		return fmt.Errorf("block student: %w", err)
	}

	s.log.Info("Student blocked", zap.String("student_id", id))
	return nil
}

func (s *studentService) ApproveAll(ctx context.Context) (int64, error) {
	n, err := s.repo.Student.ApproveAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("approve all students: %w", err)
	}

	s.log.Info("All pending students approved", zap.Int64("count", n))
	return n, nil
}
