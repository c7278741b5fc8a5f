package localdb

import (
	"context"
	"sort"

	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type laporanRepository struct {
	db *database.DB
}

// NewLaporanRepository creates a new report repository
func NewLaporanRepository(db *database.DB) laporan.Repository {
	return &laporanRepository{db: db}
}

func (r *laporanRepository) Create(ctx context.Context, l laporan.Laporan) (laporan.Laporan, error) {
	err := r.db.Update(func(doc *database.Document) error {
		l.ID = nextLaporanID(doc.Laporan)
		doc.Laporan = append(doc.Laporan, l)
		return nil
	})
	return l, err
}

func (r *laporanRepository) List(ctx context.Context) ([]laporan.Laporan, error) {
	var reports []laporan.Laporan
	err := r.db.View(func(doc *database.Document) error {
		reports = append([]laporan.Laporan{}, doc.Laporan...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Tanggal > reports[j].Tanggal
	})
	return reports, nil
}

func (r *laporanRepository) ListByNama(ctx context.Context, namaLengkap string) ([]laporan.Laporan, error) {
	reports := []laporan.Laporan{}
	err := r.db.View(func(doc *database.Document) error {
		for _, l := range doc.Laporan {
			if l.Nama == namaLengkap {
				reports = append(reports, l)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Tanggal > reports[j].Tanggal
	})
	return reports, nil
}

func (r *laporanRepository) Delete(ctx context.Context, id int) error {
	return r.db.Update(func(doc *database.Document) error {
		for i := range doc.Laporan {
			if doc.Laporan[i].ID == id {
				doc.Laporan = append(doc.Laporan[:i], doc.Laporan[i+1:]...)
				return nil
			}
		}
		return laporan.ErrLaporanNotFound
	})
}

func (r *laporanRepository) DeleteMany(ctx context.Context, ids []int) (int, error) {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	deleted := 0
	err := r.db.Update(func(doc *database.Document) error {
		kept := doc.Laporan[:0]
		for _, l := range doc.Laporan {
			if wanted[l.ID] {
				deleted++
				continue
			}
			kept = append(kept, l)
		}
		doc.Laporan = kept
		return nil
	})
	return deleted, err
}

func (r *laporanRepository) UpdateStatus(ctx context.Context, ids []int, status string) (int, error) {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	updated := 0
	err := r.db.Update(func(doc *database.Document) error {
		for i := range doc.Laporan {
			if wanted[doc.Laporan[i].ID] {
				doc.Laporan[i].Status = status
				updated++
			}
		}
		return nil
	})
	return updated, err
}

func nextLaporanID(reports []laporan.Laporan) int {
	next := 1
	for _, l := range reports {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}
