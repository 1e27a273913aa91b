package model

// Appointment is a row of the appointment list. Date and Time are rendered
// by the query as YYYY-MM-DD and HH:MM:SS.
type Appointment struct {
	ID        int64   `db:"appointment_id" json:"appointment_id"`
	PatientID int64   `db:"patient_id" json:"patient_id"`
	DoctorID  int64   `db:"doctor_id" json:"doctor_id"`
	Date      string  `db:"date" json:"date"`
	Time      string  `db:"time" json:"time"`
	Reason    *string `db:"reason" json:"reason"`
	Patient   string  `db:"patient" json:"patient"`
	Doctor    string  `db:"doctor" json:"doctor"`
}

// AppointmentRequest accepts both the short date/time names and the
// appointment_date/appointment_time column names; the latter win.
type AppointmentRequest struct {
	PatientID       Field `json:"patient_id"`
	DoctorID        Field `json:"doctor_id"`
	Date            Field `json:"date"`
	Time            Field `json:"time"`
	AppointmentDate Field `json:"appointment_date"`
	AppointmentTime Field `json:"appointment_time"`
	Reason          Field `json:"reason"`
}

type AppointmentWrite struct {
	PatientID any
	DoctorID  any
	Date      any
	Time      any
	Reason    any
}

func (r AppointmentRequest) Normalize() AppointmentWrite {
	return AppointmentWrite{
		PatientID: r.PatientID.Value(),
		DoctorID:  r.DoctorID.Value(),
		Date:      r.AppointmentDate.Coalesce(r.Date).Value(),
		Time:      r.AppointmentTime.Coalesce(r.Time).Value(),
		Reason:    r.Reason.OrNull(),
	}
}
