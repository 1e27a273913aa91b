package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type medicationRepository struct {
	BaseRepository
}

func NewMedicationRepository(base BaseRepository) repository.MedicationRepository {
	return &medicationRepository{base}
}

func (r *medicationRepository) Create(ctx context.Context, m *model.MedicationWrite) (int64, error) {
	query := `
		INSERT INTO medications (patient_id, doctor_id, name, dosage)
		VALUES ($1, $2, $3, $4)
		RETURNING medication_id
	`
	id, err := r.insert(ctx, query, m.PatientID, m.DoctorID, m.Name, m.Dosage)
	if err != nil {
		return 0, fmt.Errorf("failed to create medication: %w", err)
	}
	return id, nil
}

func (r *medicationRepository) List(ctx context.Context) ([]model.Medication, error) {
	query := `
		SELECT
			m.medication_id, m.patient_id, m.doctor_id, m.name, m.dosage,
			p.name AS patient, d.name AS doctor
		FROM medications m
		JOIN patients p ON m.patient_id = p.patient_id
		JOIN doctors d ON m.doctor_id = d.doctor_id
		ORDER BY m.medication_id DESC
	`
	medications := []model.Medication{}
	if err := r.selectAll(ctx, &medications, query); err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

func (r *medicationRepository) Update(ctx context.Context, id string, m *model.MedicationWrite) (model.Result, error) {
	query := `
		UPDATE medications
		SET patient_id = $1, doctor_id = $2, name = $3, dosage = $4
		WHERE medication_id = $5
	`
	result, err := r.exec(ctx, query, m.PatientID, m.DoctorID, m.Name, m.Dosage, id)
	if err != nil {
		return result, fmt.Errorf("failed to update medication: %w", err)
	}
	return result, nil
}

func (r *medicationRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM medications WHERE medication_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete medication: %w", err)
	}
	return result, nil
}
