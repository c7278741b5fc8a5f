package schedule

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/validator"
)

type UpdateRequest struct {
	Hari  string   `json:"hari"`
	Siswa []string `json:"siswa"`
}

func (r UpdateRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.Hari, Days) {
		errs = append(errs, validator.ValidationError{Field: "hari", Message: "hari must be a school day"})
	}
	if len(r.Siswa) == 0 {
		errs = append(errs, validator.ValidationError{Field: "siswa", Message: "siswa is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TodayRoster is the duty list for one day.
type TodayRoster struct {
	Hari  string   `json:"hari"`
	Siswa []string `json:"siswa"`
}

// Repository defines data access for the weekly roster.
type Repository interface {
	Get(ctx context.Context) (Schedule, error)
	SetDay(ctx context.Context, hari string, siswa []string) error
}

// Service defines roster operations.
type Service interface {
	Get(ctx context.Context) (Schedule, error)
	// Today returns the roster for the current local day; empty on
	// weekends.
	Today(ctx context.Context) (TodayRoster, error)
	// UpdateDay replaces one day's roster and dispatches the change to
	// the sheet best-effort.
	UpdateDay(ctx context.Context, req UpdateRequest, adminNama string) error
}
