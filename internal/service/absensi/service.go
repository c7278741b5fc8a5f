package absensi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/metrics"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type service struct {
	repo       absensi.Repository
	students   student.Repository
	dispatcher *dispatch.Dispatcher
	metrics    *metrics.Metrics
	classCode  string
	now        func() time.Time
}

// NewAbsensiService creates a new attendance service
func NewAbsensiService(repo absensi.Repository, students student.Repository, dispatcher *dispatch.Dispatcher, m *metrics.Metrics, classCode string) absensi.Service {
	return &service{
		repo:       repo,
		students:   students,
		dispatcher: dispatcher,
		metrics:    m,
		classCode:  classCode,
		now:        time.Now,
	}
}

func (s *service) ScanQR(ctx context.Context, req absensi.ScanRequest) (absensi.ScanResult, error) {
	if err := req.Validate(); err != nil {
		return absensi.ScanResult{}, err
	}

	now := s.now()
	if req.QRData != s.expectedToken(now) {
		s.metrics.ScanOutcomes.WithLabelValues("rejected").Inc()
		return absensi.ScanResult{}, absensi.ErrInvalidQR
	}

	if _, err := s.students.GetByNamaLengkap(ctx, req.Nama); err != nil {
		s.metrics.ScanOutcomes.WithLabelValues("rejected").Inc()
		return absensi.ScanResult{}, absensi.ErrStudentNotFound
	}

	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	existing, err := s.repo.GetByNamaAndTanggal(ctx, req.Nama, today)
	if err != nil {
		return absensi.ScanResult{}, err
	}

	switch {
	case existing == nil:
		return s.checkIn(ctx, req.Nama, today, clock)
	case !existing.Complete():
		return s.checkOut(ctx, *existing, clock)
	default:
		s.metrics.ScanOutcomes.WithLabelValues("rejected").Inc()
		return absensi.ScanResult{}, absensi.ErrAlreadyCompleted
	}
}

func (s *service) checkIn(ctx context.Context, nama, today, clock string) (absensi.ScanResult, error) {
	record := absensi.Absensi{
		Tanggal:  today,
		Nama:     nama,
		JamMasuk: clock,
	}
	if _, err := s.repo.Create(ctx, record); err != nil {
		return absensi.ScanResult{}, err
	}

	syncStatus := s.dispatcher.Send(ctx, sheet.ActionAbsensi, map[string]string{
		"tipe":     "masuk",
		"nama":     nama,
		"tanggal":  today,
		"jamMasuk": clock,
	})

	s.metrics.ScanOutcomes.WithLabelValues(absensi.StatusCheckedIn).Inc()
	return absensi.ScanResult{Status: absensi.StatusCheckedIn, SyncStatus: syncStatus}, nil
}

func (s *service) checkOut(ctx context.Context, record absensi.Absensi, clock string) (absensi.ScanResult, error) {
	durasi := minutesBetween(record.JamMasuk, clock)
	record.JamKeluar = &clock
	record.Durasi = &durasi

	if err := s.repo.Update(ctx, record); err != nil {
		return absensi.ScanResult{}, err
	}

	syncStatus := s.dispatcher.Send(ctx, sheet.ActionAbsensi, map[string]string{
		"tipe":      "keluar",
		"nama":      record.Nama,
		"tanggal":   record.Tanggal,
		"jamKeluar": clock,
		"durasi":    strconv.Itoa(durasi),
	})

	s.metrics.ScanOutcomes.WithLabelValues(absensi.StatusCheckedOut).Inc()
	return absensi.ScanResult{Status: absensi.StatusCheckedOut, Durasi: &durasi, SyncStatus: syncStatus}, nil
}

func (s *service) GetToday(ctx context.Context) ([]absensi.Absensi, error) {
	return s.repo.ListByTanggal(ctx, database.Today())
}

func (s *service) GetLog(ctx context.Context) ([]absensi.Absensi, error) {
	return s.repo.List(ctx)
}

// expectedToken builds today's QR token. Tokens rotate daily, so a
// photographed code stops working at midnight.
func (s *service) expectedToken(now time.Time) string {
	return fmt.Sprintf("PIKET-%s-%s", s.classCode, now.Format("20060102"))
}

// minutesBetween computes whole minutes from one HH:MM clock to
// another, clamped at zero for scans that straddle a clock correction.
func minutesBetween(from, to string) int {
	start, err1 := time.Parse("15:04", from)
	end, err2 := time.Parse("15:04", to)
	if err1 != nil || err2 != nil {
		return 0
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}
