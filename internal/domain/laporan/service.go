package laporan

import "context"

// Service defines business logic for evaluation reports.
type Service interface {
	// Create validates that the student exists and has an attendance
	// record for the given date, computes the average rating, awards XP
	// when the report is submitted, and dispatches the report to the
	// sheet best-effort.
	Create(ctx context.Context, req CreateRequest, adminNama string) (Laporan, error)

	// List returns all reports, newest first.
	List(ctx context.Context) ([]Laporan, error)

	// ListForStudent returns the submitted reports of one student.
	ListForStudent(ctx context.Context, namaLengkap string) ([]Laporan, error)

	Delete(ctx context.Context, id int) error
	DeleteMany(ctx context.Context, ids []int) (int, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (int, error)
}
