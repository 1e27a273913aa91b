package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type billingRepository struct {
	BaseRepository
}

func NewBillingRepository(base BaseRepository) repository.BillingRepository {
	return &billingRepository{base}
}

func (r *billingRepository) Create(ctx context.Context, b *model.BillWrite) (int64, error) {
	query := `
		INSERT INTO billing (pat_id, amount, date_of_bill, payment_method)
		VALUES ($1, $2, $3, $4)
		RETURNING bill_id
	`
	id, err := r.insert(ctx, query, b.PatientID, b.Amount, b.DateOfBill, b.PaymentMethod)
	if err != nil {
		return 0, fmt.Errorf("failed to create bill: %w", err)
	}
	return id, nil
}

func (r *billingRepository) List(ctx context.Context) ([]model.Bill, error) {
	query := `
		SELECT
			b.bill_id, b.pat_id, b.amount,
			to_char(b.date_of_bill, 'YYYY-MM-DD') AS date_of_bill,
			b.payment_method,
			p.name AS patient
		FROM billing b
		JOIN patients p ON b.pat_id = p.patient_id
		ORDER BY b.bill_id DESC
	`
	bills := []model.Bill{}
	if err := r.selectAll(ctx, &bills, query); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *billingRepository) Update(ctx context.Context, id string, b *model.BillWrite) (model.Result, error) {
	query := `
		UPDATE billing
		SET pat_id = $1, amount = $2, date_of_bill = $3, payment_method = $4
		WHERE bill_id = $5
	`
	result, err := r.exec(ctx, query, b.PatientID, b.Amount, b.DateOfBill, b.PaymentMethod, id)
	if err != nil {
		return result, fmt.Errorf("failed to update bill: %w", err)
	}
	return result, nil
}

func (r *billingRepository) Delete(ctx context.Context, id string) (model.Result, error) {
	query := `DELETE FROM billing WHERE bill_id = $1`

	result, err := r.exec(ctx, query, id)
	if err != nil {
		return result, fmt.Errorf("failed to delete bill: %w", err)
	}
	return result, nil
}
