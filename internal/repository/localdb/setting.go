package localdb

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type settingRepository struct {
	db *database.DB
}

// NewSettingRepository creates a new settings repository
func NewSettingRepository(db *database.DB) setting.Repository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context) (setting.AppSettings, error) {
	var s setting.AppSettings
	err := r.db.View(func(doc *database.Document) error {
		s = doc.Settings
		return nil
	})
	return s, err
}

func (r *settingRepository) Update(ctx context.Context, s setting.AppSettings) error {
	return r.db.Update(func(doc *database.Document) error {
		doc.Settings = s
		return nil
	})
}
