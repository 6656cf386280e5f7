// Package osutil holds operating system names and file permissions
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
