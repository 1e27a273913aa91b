package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, p *model.PatientWrite) (int64, error) {
	query := `
		INSERT INTO patients (name, age, gender, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING patient_id
	`
	id, err := r.insert(ctx, query, p.Name, p.Age, p.Gender, p.Phone)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	return id, nil
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	query := `
		SELECT patient_id, name, age, gender, phone
		FROM patients
		ORDER BY patient_id DESC
	`
	patients := []model.Patient{}
	if err := r.selectAll(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, id string, p *model.PatientWrite) (model.Result, error) {
	query := `UPDATE patients SET name = $1, age = $2, gender = $3, phone = $4 WHERE patient_id = $5`

	result, err := r.exec(ctx, query, p.Name, p.Age, p.Gender, p.Phone, id)
	if err != nil {
		return result, fmt.Errorf("failed to update patient: %w", err)
	}
	return result, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM patients WHERE patient_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete patient: %w", err)
	}
	return result, nil
}
