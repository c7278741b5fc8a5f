package setting

// AppSettings tunes XP awards and the expected duty window.
type AppSettings struct {
	XPOnTime           int    `json:"xpOnTime"`
	XPComplete         int    `json:"xpComplete"`
	XPRatingMultiplier int    `json:"xpRatingMultiplier"`
	XPPhoto            int    `json:"xpPhoto"`
	WaktuMulai         string `json:"waktuMulai"`   // HH:MM
	WaktuSelesai       string `json:"waktuSelesai"` // HH:MM
	MinimalDurasi      int    `json:"minimalDurasi"`
}
