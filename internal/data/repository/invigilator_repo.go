package repository

import (
	"context"
	"fmt"

	"exam-seating/internal/data/entity"
	"exam-seating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvigilatorRepository interface {
	Create(ctx context.Context, inv *entity.Invigilator) error
	FindAllActive(ctx context.Context) ([]*entity.Invigilator, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Invigilator, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type invigilatorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvigilatorRepository(db database.PgxIface, log *zap.Logger) InvigilatorRepository {
	return &invigilatorRepository{
		db:  db,
		log: log.With(zap.String("repository", "invigilator")),
	}
}

func (r *invigilatorRepository) Create(ctx context.Context, inv *entity.Invigilator) error {
	query := `
		INSERT INTO invigilators (id, name, department, designation, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		inv.ID,
		inv.Name,
		inv.Department,
		inv.Designation,
		inv.Active,
		inv.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create invigilator",
			zap.Error(err),
			zap.String("name", inv.Name),
		)
		return fmt.Errorf("failed to create invigilator: %w", err)
	}

	return nil
}

func (r *invigilatorRepository) FindAllActive(ctx context.Context) ([]*entity.Invigilator, error) {
	query := `
		SELECT id, name, department, designation, active, created_at
		FROM invigilators
		WHERE active = TRUE
		ORDER BY name
	`

	return r.queryInvigilators(ctx, query)
}

func (r *invigilatorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Invigilator, error) {
	if len(ids) == 0 {
		return []*entity.Invigilator{}, nil
	}

	query := `
		SELECT id, name, department, designation, active, created_at
		FROM invigilators
		WHERE id = ANY($1) AND active = TRUE
	`

	return r.queryInvigilators(ctx, query, ids)
}

func (r *invigilatorRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE invigilators SET active = FALSE WHERE id = $1 AND active = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate invigilator",
			zap.Error(err),
			zap.String("invigilator_id", id.String()),
		)
		return fmt.Errorf("failed to deactivate invigilator: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("invigilator not found")
	}

	return nil
}

func (r *invigilatorRepository) queryInvigilators(ctx context.Context, query string, args ...any) ([]*entity.Invigilator, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query invigilators", zap.Error(err))
		return nil, fmt.Errorf("failed to query invigilators: %w", err)
	}
	defer rows.Close()

	var invigilators []*entity.Invigilator
	for rows.Next() {
		var inv entity.Invigilator
		err := rows.Scan(
			&inv.ID,
			&inv.Name,
			&inv.Department,
			&inv.Designation,
			&inv.Active,
			&inv.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan invigilator row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan invigilator: %w", err)
		}
		invigilators = append(invigilators, &inv)
	}

	return invigilators, nil
}
