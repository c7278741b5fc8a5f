package absensi

import "context"

// Repository defines data access for attendance records. All reads return
// copies; mutations rewrite the backing document as a whole.
type Repository interface {
	// GetByNamaAndTanggal returns the record for a student on a date, or
	// nil when none exists. Used to prevent double check-in.
	GetByNamaAndTanggal(ctx context.Context, nama, tanggal string) (*Absensi, error)

	// Create appends a new record with a generated id.
	Create(ctx context.Context, a Absensi) (Absensi, error)

	// Update replaces the record matching (Nama, Tanggal).
	Update(ctx context.Context, a Absensi) error

	// ListByTanggal returns all records for one date.
	ListByTanggal(ctx context.Context, tanggal string) ([]Absensi, error)

	// List returns every record, newest date first.
	List(ctx context.Context) ([]Absensi, error)

	// ReplaceAll swaps the whole attendance collection. Owned by the sync
	// engine, which persists merged snapshots.
	ReplaceAll(ctx context.Context, records []Absensi) error
}
