package localdb

import (
	"context"
	"errors"
	"sort"

	"github.com/piket-xe8/piket-backend-go/internal/domain/pelanggaran"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

// ErrPelanggaranNotFound is returned when no violation matches an id.
var ErrPelanggaranNotFound = errors.New("pelanggaran tidak ditemukan")

type pelanggaranRepository struct {
	db *database.DB
}

// NewPelanggaranRepository creates a new violation repository
func NewPelanggaranRepository(db *database.DB) pelanggaran.Repository {
	return &pelanggaranRepository{db: db}
}

func (r *pelanggaranRepository) Create(ctx context.Context, p pelanggaran.Pelanggaran) (pelanggaran.Pelanggaran, error) {
	err := r.db.Update(func(doc *database.Document) error {
		p.ID = nextPelanggaranID(doc.Pelanggaran)
		doc.Pelanggaran = append(doc.Pelanggaran, p)
		return nil
	})
	return p, err
}

func (r *pelanggaranRepository) List(ctx context.Context) ([]pelanggaran.Pelanggaran, error) {
	var violations []pelanggaran.Pelanggaran
	err := r.db.View(func(doc *database.Document) error {
		violations = append([]pelanggaran.Pelanggaran{}, doc.Pelanggaran...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Tanggal > violations[j].Tanggal
	})
	return violations, nil
}

func (r *pelanggaranRepository) Delete(ctx context.Context, id int) error {
	return r.db.Update(func(doc *database.Document) error {
		for i := range doc.Pelanggaran {
			if doc.Pelanggaran[i].ID == id {
				doc.Pelanggaran = append(doc.Pelanggaran[:i], doc.Pelanggaran[i+1:]...)
				return nil
			}
		}
		return ErrPelanggaranNotFound
	})
}

func nextPelanggaranID(violations []pelanggaran.Pelanggaran) int {
	next := 1
	for _, p := range violations {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}
