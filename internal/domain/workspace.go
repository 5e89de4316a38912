package domain

// Root is a top-level folder open in the workspace
type Root struct {
	Name string
	Path string
}

// Workspace is the editor context read once per invocation
type Workspace struct {
	FocusedFile string // Optional, empty when no file has focus
	Roots       []Root
}

// IsEmpty reports whether the workspace has no roots
func (w Workspace) IsEmpty() bool {
	return len(w.Roots) == 0
}
