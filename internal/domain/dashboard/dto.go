package dashboard

import "context"

// AdminStats summarizes today's duty for the admin home screen.
type AdminStats struct {
	TotalPiketHariIni int     `json:"totalPiketHariIni"`
	SiswaSudahPiket   int     `json:"siswaSudahPiket"`
	SiswaBelumPiket   int     `json:"siswaBelumPiket"`
	AvgRatingHariIni  float64 `json:"avgRatingHariIni"`
}

// RatingPoint is one day on the 30-day rating trend chart.
type RatingPoint struct {
	Date      string  `json:"date"`
	AvgRating float64 `json:"avgRating"`
}

// DayCount is the roster size of one weekday.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// TaskShare is one slice of the task-completion chart.
type TaskShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Statistics is the dashboard chart payload.
type Statistics struct {
	RatingTrend        []RatingPoint `json:"ratingTrend"`
	PiketPerHari       []DayCount    `json:"piketPerHari"`
	TaskCompletionRate []TaskShare   `json:"taskCompletionRate"`
}

// MonitoringRow is one student's live duty status.
type MonitoringRow struct {
	ID             int     `json:"id"`
	Nama           string  `json:"nama"`
	NamaLengkap    string  `json:"namaLengkap"`
	StatusPiket    string  `json:"statusPiket"` // Sudah Piket / Belum Piket
	JamMasuk       *string `json:"jamMasuk"`
	JamKeluar      *string `json:"jamKeluar"`
	AvgRating      float64 `json:"avgRating"`
	TaskCompletion float64 `json:"taskCompletion"`
}

// Performer is a leaderboard extremum on the advanced stats page.
type Performer struct {
	Name    string `json:"name"`
	XP      int    `json:"xp"`
	FotoURL string `json:"fotoUrl"`
}

// PiketPhoto is one proof photo in the gallery.
type PiketPhoto struct {
	ID        int    `json:"id"`
	Nama      string `json:"nama"`
	Tanggal   string `json:"tanggal"`
	FotoBukti string `json:"fotoBukti"`
}

// AdvancedStats is the extended statistics payload.
type AdvancedStats struct {
	BestPerformer  Performer    `json:"bestPerformer"`
	WorstPerformer Performer    `json:"worstPerformer"`
	AllPiketPhotos []PiketPhoto `json:"allPiketPhotos"`
}

// Service assembles dashboard views from the local store.
type Service interface {
	AdminStats(ctx context.Context) (AdminStats, error)
	Statistics(ctx context.Context) (Statistics, error)
	Monitoring(ctx context.Context) ([]MonitoringRow, error)
	AdvancedStats(ctx context.Context) (AdvancedStats, error)
}
