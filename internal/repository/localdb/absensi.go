package localdb

import (
	"context"
	"sort"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type absensiRepository struct {
	db *database.DB
}

// NewAbsensiRepository creates a new attendance repository
func NewAbsensiRepository(db *database.DB) absensi.Repository {
	return &absensiRepository{db: db}
}

func (r *absensiRepository) GetByNamaAndTanggal(ctx context.Context, nama, tanggal string) (*absensi.Absensi, error) {
	var found *absensi.Absensi
	err := r.db.View(func(doc *database.Document) error {
		for i := range doc.Absensi {
			if doc.Absensi[i].Nama == nama && doc.Absensi[i].Tanggal == tanggal {
				a := doc.Absensi[i]
				found = &a
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *absensiRepository) Create(ctx context.Context, a absensi.Absensi) (absensi.Absensi, error) {
	err := r.db.Update(func(doc *database.Document) error {
		a.ID = nextAbsensiID(doc.Absensi)
		doc.Absensi = append(doc.Absensi, a)
		return nil
	})
	return a, err
}

func (r *absensiRepository) Update(ctx context.Context, a absensi.Absensi) error {
	return r.db.Update(func(doc *database.Document) error {
		for i := range doc.Absensi {
			if doc.Absensi[i].Nama == a.Nama && doc.Absensi[i].Tanggal == a.Tanggal {
				a.ID = doc.Absensi[i].ID
				doc.Absensi[i] = a
				return nil
			}
		}
		return absensi.ErrAbsensiNotFound
	})
}

func (r *absensiRepository) ListByTanggal(ctx context.Context, tanggal string) ([]absensi.Absensi, error) {
	records := []absensi.Absensi{}
	err := r.db.View(func(doc *database.Document) error {
		for _, a := range doc.Absensi {
			if a.Tanggal == tanggal {
				records = append(records, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortAbsensi(records)
	return records, nil
}

func (r *absensiRepository) List(ctx context.Context) ([]absensi.Absensi, error) {
	var records []absensi.Absensi
	err := r.db.View(func(doc *database.Document) error {
		records = append([]absensi.Absensi{}, doc.Absensi...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortAbsensi(records)
	return records, nil
}

func (r *absensiRepository) ReplaceAll(ctx context.Context, records []absensi.Absensi) error {
	return r.db.Update(func(doc *database.Document) error {
		doc.Absensi = append([]absensi.Absensi{}, records...)
		return nil
	})
}

// SortAbsensi orders records newest date first, check-in time ascending
// within a date. The sync engine relies on the same ordering for merged
// snapshots.
func SortAbsensi(records []absensi.Absensi) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Tanggal != records[j].Tanggal {
			return records[i].Tanggal > records[j].Tanggal
		}
		return records[i].JamMasuk < records[j].JamMasuk
	})
}

func nextAbsensiID(records []absensi.Absensi) int {
	next := 1
	for _, a := range records {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}
