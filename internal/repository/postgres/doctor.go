package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Create(ctx context.Context, d *model.DoctorWrite) (int64, error) {
	query := `
		INSERT INTO doctors (name, specialization, phone, room_no, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING doctor_id
	`
	id, err := r.insert(ctx, query, d.Name, d.Specialization, d.Phone, d.RoomNo, d.DepartmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to create doctor: %w", err)
	}
	return id, nil
}

// List returns doctors with their department name; doctors without a
// department are kept.
func (r *doctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	query := `
		SELECT
			d.doctor_id, d.name, d.specialization, d.phone, d.room_no, d.department_id,
			dep.name AS department
		FROM doctors d
		LEFT JOIN departments dep ON d.department_id = dep.department_id
		ORDER BY d.doctor_id DESC
	`
	doctors := []model.Doctor{}
	if err := r.selectAll(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, id string, d *model.DoctorWrite) (model.Result, error) {
	query := `
		UPDATE doctors
		SET name = $1, specialization = $2, phone = $3, room_no = $4, department_id = $5
		WHERE doctor_id = $6
	`
	result, err := r.exec(ctx, query, d.Name, d.Specialization, d.Phone, d.RoomNo, d.DepartmentID, id)
	if err != nil {
		return result, fmt.Errorf("failed to update doctor: %w", err)
	}
	return result, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM doctors WHERE doctor_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete doctor: %w", err)
	}
	return result, nil
}
