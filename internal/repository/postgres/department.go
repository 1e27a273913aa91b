package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type departmentRepository struct {
	BaseRepository
}

func NewDepartmentRepository(base BaseRepository) repository.DepartmentRepository {
	return &departmentRepository{base}
}

func (r *departmentRepository) Create(ctx context.Context, d *model.DepartmentWrite) (int64, error) {
	query := `INSERT INTO departments (name) VALUES ($1) RETURNING department_id`

	id, err := r.insert(ctx, query, d.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to create department: %w", err)
	}
	return id, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]model.Department, error) {
	query := `SELECT department_id, name FROM departments ORDER BY department_id DESC`

	departments := []model.Department{}
	if err := r.selectAll(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, id string, d *model.DepartmentWrite) (model.Result, error) {
	query := `UPDATE departments SET name = $1 WHERE department_id = $2`

	result, err := r.exec(ctx, query, d.Name, id)
	if err != nil {
		return result, fmt.Errorf("failed to update department: %w", err)
	}
	return result, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM departments WHERE department_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete department: %w", err)
	}
	return result, nil
}
