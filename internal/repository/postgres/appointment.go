package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

func (r *appointmentRepository) Create(ctx context.Context, a *model.AppointmentWrite) (int64, error) {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, appointment_time, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING appointment_id
	`
	id, err := r.insert(ctx, query, a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason)
	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}
	return id, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	query := `
		SELECT
			a.appointment_id, a.patient_id, a.doctor_id,
			to_char(a.appointment_date, 'YYYY-MM-DD') AS date,
			to_char(a.appointment_time, 'HH24:MI:SS') AS time,
			a.reason,
			p.name AS patient, d.name AS doctor
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id
		ORDER BY a.appointment_id DESC
	`
	appointments := []model.Appointment{}
	if err := r.selectAll(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, a *model.AppointmentWrite) (model.Result, error) {
	query := `
		UPDATE appointments
		SET patient_id = $1, doctor_id = $2, appointment_date = $3, appointment_time = $4, reason = $5
		WHERE appointment_id = $6
	`
	result, err := r.exec(ctx, query, a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason, id)
	if err != nil {
		return result, fmt.Errorf("failed to update appointment: %w", err)
	}
	return result, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM appointments WHERE appointment_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return result, nil
}
