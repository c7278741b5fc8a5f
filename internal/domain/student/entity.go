package student

// Student is a class member eligible for piket duty.
type Student struct {
	ID           int    `json:"id"`
	Nama         string `json:"nama"`
	NamaLengkap  string `json:"namaLengkap"`
	Foto         string `json:"foto"`
	HariPiket    string `json:"hariPiket"`
	PasswordHash string `json:"-"`
	XP           int    `json:"xp"`
	Level        int    `json:"level"`
	Rank         int    `json:"rank"`
	Status       string `json:"status"` // Aktif / Nonaktif
}

// XPLog records one experience-point grant.
type XPLog struct {
	ID        int    `json:"id"`
	StudentID int    `json:"studentId"`
	Tanggal   string `json:"tanggal"`
	Jumlah    int    `json:"jumlah"`
	Alasan    string `json:"alasan"`
}

// Badge is a derived achievement shown on a student profile.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}
