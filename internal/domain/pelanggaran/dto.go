package pelanggaran

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/validator"
)

type AddRequest struct {
	Tanggal string `json:"tanggal"`
	Nama    string `json:"nama"`
	Jenis   Jenis  `json:"jenisPelanggaran"`
	Poin    int    `json:"poin"`
	Sanksi  string `json:"sanksi"`
}

func (r AddRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{Field: "nama", Message: "nama is required"})
	}
	if _, ok := validator.IsValidDate(r.Tanggal); !ok {
		errs = append(errs, validator.ValidationError{Field: "tanggal", Message: "tanggal must be YYYY-MM-DD"})
	}
	valid := false
	for _, j := range AllJenis() {
		if r.Jenis == j {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "jenisPelanggaran", Message: "unknown violation kind"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Repository defines data access for violations.
type Repository interface {
	Create(ctx context.Context, p Pelanggaran) (Pelanggaran, error)
	List(ctx context.Context) ([]Pelanggaran, error)
	Delete(ctx context.Context, id int) error
}

// Service defines business logic for violations.
type Service interface {
	// Add records a violation verified by the acting admin and
	// dispatches it to the sheet best-effort.
	Add(ctx context.Context, req AddRequest, adminNama string) (Pelanggaran, error)
	List(ctx context.Context) ([]Pelanggaran, error)
	Delete(ctx context.Context, id int) error
}
