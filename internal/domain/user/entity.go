package user

// Role of an authenticated session.
type Role string

const (
	RoleSiswa      Role = "Siswa"
	RoleAdmin      Role = "Admin"
	RoleSekretaris Role = "Sekretaris"
)

// Admin is a staff account that can rate reports and manage the roster.
type Admin struct {
	ID           int    `json:"id"`
	Nama         string `json:"nama"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Foto         string `json:"foto"`
}
