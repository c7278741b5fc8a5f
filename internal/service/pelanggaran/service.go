package pelanggaran

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/domain/pelanggaran"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type service struct {
	repo       pelanggaran.Repository
	students   student.Repository
	notifier   notification.Service
	dispatcher *dispatch.Dispatcher
}

// NewPelanggaranService creates a new violation service
func NewPelanggaranService(repo pelanggaran.Repository, students student.Repository, notifier notification.Service, dispatcher *dispatch.Dispatcher) pelanggaran.Service {
	return &service{
		repo:       repo,
		students:   students,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

func (s *service) Add(ctx context.Context, req pelanggaran.AddRequest, adminNama string) (pelanggaran.Pelanggaran, error) {
	if err := req.Validate(); err != nil {
		return pelanggaran.Pelanggaran{}, err
	}

	subject, err := s.students.GetByNamaLengkap(ctx, req.Nama)
	if err != nil {
		return pelanggaran.Pelanggaran{}, err
	}

	created, err := s.repo.Create(ctx, pelanggaran.Pelanggaran{
		Tanggal:    req.Tanggal,
		Nama:       req.Nama,
		Jenis:      req.Jenis,
		Poin:       req.Poin,
		Sanksi:     req.Sanksi,
		Status:     pelanggaran.StatusProses,
		VerifiedBy: adminNama,
	})
	if err != nil {
		return pelanggaran.Pelanggaran{}, err
	}

	message := fmt.Sprintf("Kamu dicatat melanggar: %s (%d poin). Sanksi: %s", created.Jenis, created.Poin, created.Sanksi)
	if err := s.notifier.Notify(ctx, subject.ID, message, "/profil"); err != nil {
		slog.Warn("Failed to deliver violation notification", "studentId", subject.ID, "error", err)
	}

	s.dispatcher.Send(ctx, sheet.ActionAddPelanggaran, map[string]string{
		"tanggal":          created.Tanggal,
		"nama":             created.Nama,
		"jenisPelanggaran": string(created.Jenis),
		"poin":             strconv.Itoa(created.Poin),
		"sanksi":           created.Sanksi,
	})

	return created, nil
}

func (s *service) List(ctx context.Context) ([]pelanggaran.Pelanggaran, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
