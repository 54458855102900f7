package record

import (
	"context"

	"schoolbook/internal/shared"
)

// AddBilling appends a billing entry to the record matching the billed roll
// number, synthesizing a placeholder record when none exists. A second entry
// with the same bill name on the same record is rejected with a conflict.
func (s *Service) AddBilling(ctx context.Context, in BillingInput) (*Student, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, NewValidationError("all billing fields are required")
	}

	roll, err := shared.ToInt64(in.BilledRoll)
	if err != nil {
		return nil, NewValidationError("billedRoll must be numeric")
	}
	amount, err := shared.ToFloat64(in.Amount)
	if err != nil {
		return nil, NewValidationError("amount must be numeric")
	}

	student, err := s.store.GetOrCreateByRoll(ctx, roll, in.Standard)
	if err != nil {
		return nil, err
	}

	if student.HasBill(in.BillName) {
		return nil, NewConflictError("billing already exists for this student")
	}

	student.Billing = append(student.Billing, Billing{
		BillName:   in.BillName,
		Standard:   in.Standard,
		BilledRoll: roll,
		Amount:     amount,
	})

	if err := s.store.Save(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}
