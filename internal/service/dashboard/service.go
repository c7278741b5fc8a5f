package dashboard

import (
	"context"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/dashboard"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type service struct {
	students student.Repository
	absensi  absensi.Repository
	laporan  laporan.Repository
	schedule schedule.Repository
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	students student.Repository,
	absensiRepo absensi.Repository,
	laporanRepo laporan.Repository,
	scheduleRepo schedule.Repository,
) dashboard.Service {
	return &service{
		students: students,
		absensi:  absensiRepo,
		laporan:  laporanRepo,
		schedule: scheduleRepo,
		now:      time.Now,
	}
}

func (s *service) AdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	today := database.Today()

	records, err := s.absensi.ListByTanggal(ctx, today)
	if err != nil {
		return dashboard.AdminStats{}, err
	}

	roster, err := s.schedule.Get(ctx)
	if err != nil {
		return dashboard.AdminStats{}, err
	}
	hari := schedule.DayName[s.now().Weekday().String()]
	expected := len(roster[hari])

	reports, err := s.laporan.List(ctx)
	if err != nil {
		return dashboard.AdminStats{}, err
	}
	ratingSum, rated := 0.0, 0
	for _, l := range reports {
		if l.Tanggal == today {
			ratingSum += l.AvgRating
			rated++
		}
	}

	stats := dashboard.AdminStats{
		TotalPiketHariIni: expected,
		SiswaSudahPiket:   len(records),
	}
	if expected > len(records) {
		stats.SiswaBelumPiket = expected - len(records)
	}
	if rated > 0 {
		stats.AvgRatingHariIni = ratingSum / float64(rated)
	}
	return stats, nil
}

func (s *service) Statistics(ctx context.Context) (dashboard.Statistics, error) {
	reports, err := s.laporan.List(ctx)
	if err != nil {
		return dashboard.Statistics{}, err
	}

	stats := dashboard.Statistics{
		RatingTrend:        s.ratingTrend(reports),
		TaskCompletionRate: taskShares(reports),
	}

	roster, err := s.schedule.Get(ctx)
	if err != nil {
		return dashboard.Statistics{}, err
	}
	for _, day := range schedule.Days {
		stats.PiketPerHari = append(stats.PiketPerHari, dashboard.DayCount{
			Day:   day,
			Count: len(roster[day]),
		})
	}
	return stats, nil
}

// ratingTrend averages report ratings per day over the last 30 days.
// Days without a report are omitted rather than zero-filled.
func (s *service) ratingTrend(reports []laporan.Laporan) []dashboard.RatingPoint {
	cutoff := s.now().AddDate(0, 0, -30).Format("2006-01-02")

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, l := range reports {
		if l.Tanggal < cutoff {
			continue
		}
		sums[l.Tanggal] += l.AvgRating
		counts[l.Tanggal]++
	}

	trend := []dashboard.RatingPoint{}
	for d := 0; d <= 30; d++ {
		date := s.now().AddDate(0, 0, d-30).Format("2006-01-02")
		if counts[date] == 0 {
			continue
		}
		trend = append(trend, dashboard.RatingPoint{
			Date:      date,
			AvgRating: sums[date] / float64(counts[date]),
		})
	}
	return trend
}

func taskShares(reports []laporan.Laporan) []dashboard.TaskShare {
	done, missed := 0, 0
	for _, l := range reports {
		for _, completed := range l.Tasks {
			if completed {
				done++
			} else {
				missed++
			}
		}
	}
	return []dashboard.TaskShare{
		{Name: "Selesai", Value: done},
		{Name: "Belum", Value: missed},
	}
}

func (s *service) Monitoring(ctx context.Context) ([]dashboard.MonitoringRow, error) {
	roster, err := s.schedule.Get(ctx)
	if err != nil {
		return nil, err
	}
	hari := schedule.DayName[s.now().Weekday().String()]

	records, err := s.absensi.ListByTanggal(ctx, database.Today())
	if err != nil {
		return nil, err
	}
	byNama := map[string]absensi.Absensi{}
	for _, a := range records {
		byNama[a.Nama] = a
	}

	reports, err := s.laporan.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := []dashboard.MonitoringRow{}
	for _, nama := range roster[hari] {
		subject, err := s.students.GetByNamaLengkap(ctx, nama)
		if err != nil {
			continue
		}

		row := dashboard.MonitoringRow{
			ID:          subject.ID,
			Nama:        subject.Nama,
			NamaLengkap: subject.NamaLengkap,
			StatusPiket: "Belum Piket",
		}
		if a, ok := byNama[nama]; ok {
			row.StatusPiket = "Sudah Piket"
			row.JamMasuk = &a.JamMasuk
			row.JamKeluar = a.JamKeluar
		}
		row.AvgRating, row.TaskCompletion = performance(reports, nama)
		rows = append(rows, row)
	}
	return rows, nil
}

// performance aggregates one student's all-time rating mean and task
// completion share from their submitted reports.
func performance(reports []laporan.Laporan, nama string) (avgRating, taskCompletion float64) {
	ratingSum, count := 0.0, 0
	done, total := 0, 0
	for _, l := range reports {
		if l.Nama != nama || l.Status != laporan.StatusSubmitted {
			continue
		}
		ratingSum += l.AvgRating
		count++
		for _, completed := range l.Tasks {
			total++
			if completed {
				done++
			}
		}
	}
	if count > 0 {
		avgRating = ratingSum / float64(count)
	}
	if total > 0 {
		taskCompletion = float64(done) / float64(total) * 100
	}
	return avgRating, taskCompletion
}

func (s *service) AdvancedStats(ctx context.Context) (dashboard.AdvancedStats, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return dashboard.AdvancedStats{}, err
	}

	stats := dashboard.AdvancedStats{AllPiketPhotos: []dashboard.PiketPhoto{}}
	for i, st := range students {
		if i == 0 || st.XP > stats.BestPerformer.XP {
			stats.BestPerformer = dashboard.Performer{Name: st.NamaLengkap, XP: st.XP, FotoURL: st.Foto}
		}
		if i == 0 || st.XP < stats.WorstPerformer.XP {
			stats.WorstPerformer = dashboard.Performer{Name: st.NamaLengkap, XP: st.XP, FotoURL: st.Foto}
		}
	}

	reports, err := s.laporan.List(ctx)
	if err != nil {
		return dashboard.AdvancedStats{}, err
	}
	for _, l := range reports {
		for _, foto := range l.FotoBukti {
			stats.AllPiketPhotos = append(stats.AllPiketPhotos, dashboard.PiketPhoto{
				ID:        l.ID,
				Nama:      l.Nama,
				Tanggal:   l.Tanggal,
				FotoBukti: foto,
			})
		}
	}
	return stats, nil
}
