package laporan

import "github.com/piket-xe8/piket-backend-go/internal/pkg/validator"

type CreateRequest struct {
	Tanggal     string          `json:"tanggal"`
	Nama        string          `json:"nama"`
	Rating      Rating          `json:"rating"`
	RatingNotes *RatingNotes    `json:"ratingNotes,omitempty"`
	Tasks       map[string]bool `json:"tasks"`
	Catatan     string          `json:"catatan"`
	FotoBukti   []string        `json:"fotoBukti"`
	XP          int             `json:"xp"`
	Status      string          `json:"status"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{Field: "nama", Message: "nama is required"})
	}
	if _, ok := validator.IsValidDate(r.Tanggal); !ok {
		errs = append(errs, validator.ValidationError{Field: "tanggal", Message: "tanggal must be YYYY-MM-DD"})
	}
	if r.Status != StatusDraft && r.Status != StatusSubmitted {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be draft or submitted"})
	}
	for field, score := range map[string]int{
		"rating.lantai":     r.Rating.Lantai,
		"rating.papanTulis": r.Rating.PapanTulis,
		"rating.meja":       r.Rating.Meja,
		"rating.sampah":     r.Rating.Sampah,
	} {
		if score < 1 || score > 5 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "rating must be between 1 and 5"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	IDs    []int  `json:"ids"`
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "ids is required"})
	}
	if r.Status != StatusDraft && r.Status != StatusSubmitted {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be draft or submitted"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
