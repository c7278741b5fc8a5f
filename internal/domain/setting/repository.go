package setting

import "context"

// Repository defines data access for application settings.
type Repository interface {
	Get(ctx context.Context) (AppSettings, error)
	Update(ctx context.Context, s AppSettings) error
}
