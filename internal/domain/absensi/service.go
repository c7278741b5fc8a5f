package absensi

import "context"

// Service defines business logic for attendance operations
type Service interface {
	// ScanQR validates a day-coded QR token and performs check-in or
	// check-out for the named student. The scan is written locally first
	// and dispatched to the sheet best-effort; the ScanResult reports
	// whether it was synced, queued or kept local.
	ScanQR(ctx context.Context, req ScanRequest) (ScanResult, error)

	// GetToday returns today's attendance list from the local store.
	GetToday(ctx context.Context) ([]Absensi, error)

	// GetLog returns the full attendance log, newest date first.
	GetLog(ctx context.Context) ([]Absensi, error)
}
