package ports

import "context"

// PathTranslator converts paths between the WSL and Windows namespaces
type PathTranslator interface {
	// ToNativePath converts a WSL path (/home/u/p) to a Windows path
	ToNativePath(ctx context.Context, wslPath string) (string, error)

	// ToWSLPath converts a Windows path (C:\Users\u) to a WSL path
	ToWSLPath(ctx context.Context, nativePath string) (string, error)
}
