package model

// Bill is a row of the billing ledger joined with the patient name. The
// patient reference is stored as pat_id.
type Bill struct {
	ID            int64   `db:"bill_id" json:"bill_id"`
	PatientID     int64   `db:"pat_id" json:"pat_id"`
	Amount        float64 `db:"amount" json:"amount"`
	DateOfBill    *string `db:"date_of_bill" json:"date_of_bill"`
	PaymentMethod *string `db:"payment_method" json:"payment_method"`
	Patient       string  `db:"patient" json:"patient"`
}

type BillRequest struct {
	PatID         Field `json:"pat_id"`
	PatientID     Field `json:"patient_id"`
	Amount        Field `json:"amount"`
	DateOfBill    Field `json:"date_of_bill"`
	PaymentMethod Field `json:"payment_method"`
}

type BillWrite struct {
	PatientID     any
	Amount        any
	DateOfBill    any
	PaymentMethod any
}

func (r BillRequest) Normalize() BillWrite {
	return BillWrite{
		PatientID:     r.PatID.Coalesce(r.PatientID).Value(),
		Amount:        r.Amount.Or(0),
		DateOfBill:    r.DateOfBill.OrNull(),
		PaymentMethod: r.PaymentMethod.OrNull(),
	}
}
