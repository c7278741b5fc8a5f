package pelanggaran

import "errors"

var (
	ErrPelanggaranNotFound = errors.New("pelanggaran tidak ditemukan")
	ErrStudentNotFound     = errors.New("siswa tidak ditemukan")
	ErrInvalidJenis        = errors.New("jenis pelanggaran tidak valid")
)
