package model

type Patient struct {
	ID     int64   `db:"patient_id" json:"patient_id"`
	Name   string  `db:"name" json:"name"`
	Age    *int64  `db:"age" json:"age"`
	Gender *string `db:"gender" json:"gender"`
	Phone  *string `db:"phone" json:"phone"`
}

type PatientRequest struct {
	Name   Field `json:"name"`
	Age    Field `json:"age"`
	Gender Field `json:"gender"`
	Phone  Field `json:"phone"`
}

type PatientWrite struct {
	Name   any
	Age    any
	Gender any
	Phone  any
}

func (r PatientRequest) Normalize() PatientWrite {
	return PatientWrite{
		Name:   r.Name.Value(),
		Age:    r.Age.OrNull(),
		Gender: r.Gender.OrNull(),
		Phone:  r.Phone.OrNull(),
	}
}
