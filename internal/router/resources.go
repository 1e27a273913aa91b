package router

import (
	"github.com/rs/zerolog"

	resourceHandler "github.com/jwalitptl/clinic-api/internal/handler/resource"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository/postgres"
	resourceService "github.com/jwalitptl/clinic-api/internal/service/resource"
	"github.com/jwalitptl/clinic-api/pkg/messaging"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

type ResourceDeps struct {
	Base      postgres.BaseRepository
	Publisher messaging.Publisher
	Metrics   *metrics.Metrics
	Logger    zerolog.Logger
}

// Resources builds the handlers of every clinic resource, in route
// registration order.
func Resources(deps ResourceDeps) []Handler {
	return []Handler{
		resourceHandler.NewHandler[model.DepartmentRequest, model.Department](
			resourceService.NewService[model.DepartmentRequest](model.ResourceDepartment,
				postgres.NewDepartmentRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("department", "departments"),
		),
		resourceHandler.NewHandler[model.PatientRequest, model.Patient](
			resourceService.NewService[model.PatientRequest](model.ResourcePatient,
				postgres.NewPatientRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("patient", "patients"),
		),
		resourceHandler.NewHandler[model.DoctorRequest, model.Doctor](
			resourceService.NewService[model.DoctorRequest](model.ResourceDoctor,
				postgres.NewDoctorRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("doctor", "doctors"),
		),
		resourceHandler.NewHandler[model.AppointmentRequest, model.Appointment](
			resourceService.NewService[model.AppointmentRequest](model.ResourceAppointment,
				postgres.NewAppointmentRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("appointment", "appointments"),
		),
		resourceHandler.NewHandler[model.MedicationRequest, model.Medication](
			resourceService.NewService[model.MedicationRequest](model.ResourceMedication,
				postgres.NewMedicationRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("medication", "medications"),
		),
		resourceHandler.NewHandler[model.BillRequest, model.Bill](
			resourceService.NewService[model.BillRequest](model.ResourceBilling,
				postgres.NewBillingRepository(deps.Base), deps.Publisher, deps.Metrics, deps.Logger),
			resourceHandler.DefaultRoutes("billing", "billing"),
		),
	}
}
