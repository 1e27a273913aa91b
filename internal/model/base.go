package model

// Request is a decoded request body that knows how to normalize itself into
// the column set W written by create and update.
type Request[W any] interface {
	Normalize() W
}

// Result is what update and delete report back. Zero affected rows is not an
// error: the statement ran, it just matched nothing.
type Result struct {
	AffectedRows int64 `json:"affectedRows"`
}

// Resource names used in routes, logs, metrics and change events.
const (
	ResourceDepartment  = "department"
	ResourcePatient     = "patient"
	ResourceDoctor      = "doctor"
	ResourceAppointment = "appointment"
	ResourceMedication  = "medication"
	ResourceBilling     = "billing"
)
