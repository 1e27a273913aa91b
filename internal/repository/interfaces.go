package repository

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
)

// Repository is the storage contract shared by every clinic resource. W is
// the normalized column set written by Create and Update, R the row returned
// by List.
type Repository[W any, R any] interface {
	Create(ctx context.Context, w *W) (int64, error)
	List(ctx context.Context) ([]R, error)
	Update(ctx context.Context, id string, w *W) (model.Result, error)
	Delete(ctx context.Context, id string) (model.Result, error)
}

type DepartmentRepository = Repository[model.DepartmentWrite, model.Department]

type PatientRepository = Repository[model.PatientWrite, model.Patient]

type DoctorRepository = Repository[model.DoctorWrite, model.Doctor]

type AppointmentRepository = Repository[model.AppointmentWrite, model.Appointment]

type MedicationRepository = Repository[model.MedicationWrite, model.Medication]

type BillingRepository = Repository[model.BillWrite, model.Bill]
