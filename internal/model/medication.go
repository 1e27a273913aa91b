package model

type Medication struct {
	ID        int64  `db:"medication_id" json:"medication_id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Name      string `db:"name" json:"name"`
	Dosage    string `db:"dosage" json:"dosage"`
	Patient   string `db:"patient" json:"patient"`
	Doctor    string `db:"doctor" json:"doctor"`
}

type MedicationRequest struct {
	PatientID Field `json:"patient_id"`
	DoctorID  Field `json:"doctor_id"`
	Name      Field `json:"name"`
	Dosage    Field `json:"dosage"`
}

type MedicationWrite struct {
	PatientID any
	DoctorID  any
	Name      any
	Dosage    any
}

// Normalize keeps a missing dosage as the empty string; the column is not
// nullable.
func (r MedicationRequest) Normalize() MedicationWrite {
	return MedicationWrite{
		PatientID: r.PatientID.Value(),
		DoctorID:  r.DoctorID.Value(),
		Name:      r.Name.Value(),
		Dosage:    r.Dosage.Or(""),
	}
}
