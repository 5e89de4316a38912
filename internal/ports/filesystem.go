package ports

// FileSystem answers read-only questions about the local filesystem
type FileSystem interface {
	// Exists reports whether something exists at path (no permission check)
	Exists(path string) bool
}

// EnvReader reads environment variables
type EnvReader interface {
	Getenv(key string) string
}
