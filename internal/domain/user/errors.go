package user

import "errors"

var (
	ErrAdminNotFound          = errors.New("admin tidak ditemukan")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
