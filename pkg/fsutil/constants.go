package fsutil

// File and directory permission constants used for everything pulpctl writes.
const (
	FileModeDefault = 0o644 // -rw-r--r--: logs and generated manifests
	FileModePrivate = 0o600 // -rw-------: files that may hold credentials
	FileModeExec    = 0o755 // -rwxr-xr-x: scripts

	DirModeDefault = 0o755 // drwxr-xr-x
	DirModeSecure  = 0o750 // drwxr-x---: log and hook directories
)
