package student

import "context"

// Repository defines data access for students and their XP logs.
type Repository interface {
	List(ctx context.Context) ([]Student, error)
	GetByNamaLengkap(ctx context.Context, namaLengkap string) (*Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)

	// AddXP increments a student's XP and appends an XP log entry in one
	// document rewrite.
	AddXP(ctx context.Context, studentID int, tanggal string, jumlah int, alasan string) error

	ListXPLogs(ctx context.Context, studentID int) ([]XPLog, error)
}
