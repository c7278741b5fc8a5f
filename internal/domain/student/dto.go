package student

import "context"

// PiketHistory is one scored duty session on a profile page.
type PiketHistory struct {
	ID        int     `json:"id"`
	Tanggal   string  `json:"tanggal"`
	XP        int     `json:"xp"`
	AvgRating float64 `json:"avgRating"`
}

// PersonalStats aggregates a student's all-time numbers.
type PersonalStats struct {
	TotalPiket int     `json:"totalPiket"`
	AvgRating  float64 `json:"avgRating"`
}

// ProfileData is the full profile payload for one student.
type ProfileData struct {
	Student       Student        `json:"student"`
	Badges        []Badge        `json:"badges"`
	History       []PiketHistory `json:"history"`
	PersonalStats PersonalStats  `json:"personalStats"`
}

// Service defines student-facing reads: leaderboard, profiles, XP.
type Service interface {
	// Ranked returns all students sorted by XP descending with Rank
	// recomputed from position.
	Ranked(ctx context.Context) ([]Student, error)

	// GetProfile assembles profile data (badges, history, stats) for one
	// student by full name.
	GetProfile(ctx context.Context, namaLengkap string) (*ProfileData, error)

	// CheckedOutToday returns students with a completed record today.
	CheckedOutToday(ctx context.Context) ([]Student, error)
}
