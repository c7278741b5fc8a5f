package student

import (
	"context"
	"sort"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type service struct {
	repo    student.Repository
	absensi absensi.Repository
	laporan laporan.Repository
}

// NewStudentService creates a new student service
func NewStudentService(repo student.Repository, absensiRepo absensi.Repository, laporanRepo laporan.Repository) student.Service {
	return &service{
		repo:    repo,
		absensi: absensiRepo,
		laporan: laporanRepo,
	}
}

func (s *service) Ranked(ctx context.Context) ([]student.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].XP > students[j].XP
	})
	for i := range students {
		students[i].Rank = i + 1
	}
	return students, nil
}

func (s *service) GetProfile(ctx context.Context, namaLengkap string) (*student.ProfileData, error) {
	subject, err := s.repo.GetByNamaLengkap(ctx, namaLengkap)
	if err != nil {
		return nil, err
	}

	reports, err := s.laporan.ListByNama(ctx, namaLengkap)
	if err != nil {
		return nil, err
	}

	history := make([]student.PiketHistory, 0, len(reports))
	ratingSum := 0.0
	for _, l := range reports {
		if l.Status != laporan.StatusSubmitted {
			continue
		}
		history = append(history, student.PiketHistory{
			ID:        l.ID,
			Tanggal:   l.Tanggal,
			XP:        l.XP,
			AvgRating: l.AvgRating,
		})
		ratingSum += l.AvgRating
	}

	stats := student.PersonalStats{TotalPiket: len(history)}
	if len(history) > 0 {
		stats.AvgRating = ratingSum / float64(len(history))
	}

	return &student.ProfileData{
		Student:       *subject,
		Badges:        badgesFor(*subject, stats),
		History:       history,
		PersonalStats: stats,
	}, nil
}

func (s *service) CheckedOutToday(ctx context.Context) ([]student.Student, error) {
	records, err := s.absensi.ListByTanggal(ctx, database.Today())
	if err != nil {
		return nil, err
	}

	done := map[string]bool{}
	for _, a := range records {
		if a.Complete() {
			done[a.Nama] = true
		}
	}

	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := []student.Student{}
	for _, st := range students {
		if done[st.NamaLengkap] {
			out = append(out, st)
		}
	}
	return out, nil
}

// badgesFor derives the achievement set from a student's record. The
// catalog is fixed; only the earned flag varies.
func badgesFor(subject student.Student, stats student.PersonalStats) []student.Badge {
	return []student.Badge{
		{
			ID:          "piket-pertama",
			Name:        "Piket Pertama",
			Description: "Menyelesaikan piket pertama",
			Icon:        "🧹",
			Earned:      stats.TotalPiket >= 1,
		},
		{
			ID:          "rajin-piket",
			Name:        "Rajin Piket",
			Description: "Menyelesaikan 10 piket",
			Icon:        "🔥",
			Earned:      stats.TotalPiket >= 10,
		},
		{
			ID:          "bintang-kelas",
			Name:        "Bintang Kelas",
			Description: "Rata-rata rating 4.5 atau lebih",
			Icon:        "⭐",
			Earned:      stats.TotalPiket >= 3 && stats.AvgRating >= 4.5,
		},
		{
			ID:          "level-5",
			Name:        "Level 5",
			Description: "Mencapai level 5",
			Icon:        "🏆",
			Earned:      subject.Level >= 5,
		},
	}
}
