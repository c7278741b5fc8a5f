package localdb

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

// NewScheduleRepository creates a new roster repository
func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Get(ctx context.Context) (schedule.Schedule, error) {
	out := schedule.Schedule{}
	err := r.db.View(func(doc *database.Document) error {
		for day, names := range doc.Schedule {
			out[day] = append([]string{}, names...)
		}
		return nil
	})
	return out, err
}

func (r *scheduleRepository) SetDay(ctx context.Context, hari string, siswa []string) error {
	return r.db.Update(func(doc *database.Document) error {
		if doc.Schedule == nil {
			doc.Schedule = schedule.Schedule{}
		}
		doc.Schedule[hari] = append([]string{}, siswa...)
		return nil
	})
}
