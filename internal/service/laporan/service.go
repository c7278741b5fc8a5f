package laporan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type service struct {
	repo       laporan.Repository
	absensi    absensi.Repository
	students   student.Repository
	settings   setting.Repository
	notifier   notification.Service
	dispatcher *dispatch.Dispatcher
}

// NewLaporanService creates a new report service
func NewLaporanService(
	repo laporan.Repository,
	absensiRepo absensi.Repository,
	students student.Repository,
	settings setting.Repository,
	notifier notification.Service,
	dispatcher *dispatch.Dispatcher,
) laporan.Service {
	return &service{
		repo:       repo,
		absensi:    absensiRepo,
		students:   students,
		settings:   settings,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

func (s *service) Create(ctx context.Context, req laporan.CreateRequest, adminNama string) (laporan.Laporan, error) {
	if err := req.Validate(); err != nil {
		return laporan.Laporan{}, err
	}

	subject, err := s.students.GetByNamaLengkap(ctx, req.Nama)
	if err != nil {
		return laporan.Laporan{}, laporan.ErrStudentNotFound
	}

	record, err := s.absensi.GetByNamaAndTanggal(ctx, req.Nama, req.Tanggal)
	if err != nil {
		return laporan.Laporan{}, err
	}
	if record == nil {
		return laporan.Laporan{}, laporan.ErrAbsensiNotFound
	}

	avg := req.Rating.Avg()
	xp := req.XP
	if xp == 0 {
		xp = s.computeXP(ctx, avg, len(req.FotoBukti) > 0)
	}

	l := laporan.Laporan{
		Tanggal:     req.Tanggal,
		Nama:        req.Nama,
		Rating:      req.Rating,
		RatingNotes: req.RatingNotes,
		AvgRating:   avg,
		Tasks:       req.Tasks,
		Catatan:     req.Catatan,
		FotoBukti:   req.FotoBukti,
		XP:          xp,
		Verified:    true,
		VerifiedBy:  adminNama,
		WaktuMulai:  record.JamMasuk,
		Status:      req.Status,
	}
	if record.JamKeluar != nil {
		l.WaktuSelesai = *record.JamKeluar
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return laporan.Laporan{}, err
	}

	if created.Status == laporan.StatusSubmitted {
		s.award(ctx, subject.ID, created)
	}

	s.dispatcher.Send(ctx, sheet.ActionCreateLaporan, map[string]string{
		"tanggal":   created.Tanggal,
		"nama":      created.Nama,
		"rating":    marshalField(created.Rating),
		"tasks":     marshalField(created.Tasks),
		"catatan":   created.Catatan,
		"avgRating": fmt.Sprintf("%.2f", created.AvgRating),
		"xp":        fmt.Sprintf("%d", created.XP),
	})

	return created, nil
}

// award grants the report's XP and notifies the rated student. Both are
// best-effort: a failed grant must not roll back the stored report.
func (s *service) award(ctx context.Context, studentID int, l laporan.Laporan) {
	alasan := fmt.Sprintf("Penilaian piket %s", l.Tanggal)
	if err := s.students.AddXP(ctx, studentID, l.Tanggal, l.XP, alasan); err != nil {
		slog.Error("Failed to grant report XP", "studentId", studentID, "error", err)
		return
	}

	message := fmt.Sprintf("Piketmu tanggal %s dinilai %.1f bintang. +%d XP!", l.Tanggal, l.AvgRating, l.XP)
	if err := s.notifier.Notify(ctx, studentID, message, "/profil"); err != nil {
		slog.Warn("Failed to deliver report notification", "studentId", studentID, "error", err)
	}
}

// computeXP derives the award from the tunable settings when the
// caller did not pin an explicit amount.
func (s *service) computeXP(ctx context.Context, avgRating float64, hasPhoto bool) int {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return 0
	}
	xp := cfg.XPComplete + int(math.Round(avgRating))*cfg.XPRatingMultiplier
	if hasPhoto {
		xp += cfg.XPPhoto
	}
	return xp
}

func (s *service) List(ctx context.Context) ([]laporan.Laporan, error) {
	return s.repo.List(ctx)
}

func (s *service) ListForStudent(ctx context.Context, namaLengkap string) ([]laporan.Laporan, error) {
	reports, err := s.repo.ListByNama(ctx, namaLengkap)
	if err != nil {
		return nil, err
	}
	submitted := reports[:0]
	for _, l := range reports {
		if l.Status == laporan.StatusSubmitted {
			submitted = append(submitted, l)
		}
	}
	return submitted, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) DeleteMany(ctx context.Context, ids []int) (int, error) {
	return s.repo.DeleteMany(ctx, ids)
}

func (s *service) UpdateStatus(ctx context.Context, req laporan.UpdateStatusRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.repo.UpdateStatus(ctx, req.IDs, req.Status)
}

func marshalField(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
