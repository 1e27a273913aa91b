package model

// Doctor is a row of the doctor list, joined with its department name.
type Doctor struct {
	ID             int64   `db:"doctor_id" json:"doctor_id"`
	Name           string  `db:"name" json:"name"`
	Specialization *string `db:"specialization" json:"specialization"`
	Phone          *string `db:"phone" json:"phone"`
	RoomNo         *string `db:"room_no" json:"room_no"`
	DepartmentID   *int64  `db:"department_id" json:"department_id"`
	Department     *string `db:"department" json:"department"`
}

// DoctorRequest accepts the legacy contact field next to phone.
type DoctorRequest struct {
	Name           Field `json:"name"`
	Specialization Field `json:"specialization"`
	Phone          Field `json:"phone"`
	Contact        Field `json:"contact"`
	RoomNo         Field `json:"room_no"`
	DepartmentID   Field `json:"department_id"`
}

type DoctorWrite struct {
	Name           any
	Specialization any
	Phone          any
	RoomNo         any
	DepartmentID   any
}

func (r DoctorRequest) Normalize() DoctorWrite {
	return DoctorWrite{
		Name:           r.Name.Value(),
		Specialization: r.Specialization.OrNull(),
		Phone:          r.Phone.Coalesce(r.Contact).OrNull(),
		RoomNo:         r.RoomNo.TrimmedOrNull(),
		DepartmentID:   r.DepartmentID.OrNull(),
	}
}
