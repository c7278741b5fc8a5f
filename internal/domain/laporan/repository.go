package laporan

import "context"

// Repository defines data access for evaluation reports.
type Repository interface {
	Create(ctx context.Context, l Laporan) (Laporan, error)
	List(ctx context.Context) ([]Laporan, error)
	ListByNama(ctx context.Context, namaLengkap string) ([]Laporan, error)
	Delete(ctx context.Context, id int) error
	DeleteMany(ctx context.Context, ids []int) (int, error)
	UpdateStatus(ctx context.Context, ids []int, status string) (int, error)
}
