package ports

import "context"

// PickItem is one entry of an interactive single choice
type PickItem struct {
	Detail string
	Label  string
}

// RootPicker asks the user to choose one item
type RootPicker interface {
	// Pick blocks until the user chooses or cancels.
	// ok is false when the user dismissed the prompt; that is not an error.
	Pick(ctx context.Context, title string, items []PickItem) (index int, ok bool, err error)
}
