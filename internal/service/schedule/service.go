package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type service struct {
	repo       schedule.Repository
	dispatcher *dispatch.Dispatcher
	now        func() time.Time
}

// NewScheduleService creates a new roster service
func NewScheduleService(repo schedule.Repository, dispatcher *dispatch.Dispatcher) schedule.Service {
	return &service{
		repo:       repo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *service) Get(ctx context.Context) (schedule.Schedule, error) {
	return s.repo.Get(ctx)
}

func (s *service) Today(ctx context.Context) (schedule.TodayRoster, error) {
	hari := schedule.DayName[s.now().Weekday().String()]

	roster, err := s.repo.Get(ctx)
	if err != nil {
		return schedule.TodayRoster{}, err
	}

	// Weekends have no roster entry and come back empty.
	return schedule.TodayRoster{
		Hari:  hari,
		Siswa: roster[hari],
	}, nil
}

func (s *service) UpdateDay(ctx context.Context, req schedule.UpdateRequest, adminNama string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.SetDay(ctx, req.Hari, req.Siswa); err != nil {
		return err
	}

	siswa, _ := json.Marshal(req.Siswa)
	s.dispatcher.Send(ctx, sheet.ActionUpdateJadwal, map[string]string{
		"hari":      req.Hari,
		"siswa":     string(siswa),
		"updatedBy": adminNama,
	})
	return nil
}
