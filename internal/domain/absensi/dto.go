package absensi

import "github.com/piket-xe8/piket-backend-go/internal/pkg/validator"

// ScanStatus values returned by ScanQR.
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// SyncStatus values describe how far a scan made it towards the sheet.
const (
	SyncLocal  = "local"  // sheet sync disabled, stored locally only
	SyncSynced = "synced" // dispatched to the sheet this request
	SyncQueued = "queued" // dispatch failed, retained in the pending queue
)

type ScanRequest struct {
	QRData string `json:"qrData"`
	Nama   string `json:"nama"`
}

func (r ScanRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.QRData) {
		errs = append(errs, validator.ValidationError{Field: "qrData", Message: "qrData is required"})
	}
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{Field: "nama", Message: "nama is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanResult struct {
	Status     string `json:"status"`
	Durasi     *int   `json:"durasi,omitempty"`
	SyncStatus string `json:"syncStatus"`
}
