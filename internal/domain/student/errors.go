package student

import "errors"

var (
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
)
