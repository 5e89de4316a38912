package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forkit/internal/domain"
	"forkit/internal/ports"
	portsmocks "forkit/internal/ports/mocks"
)

var twoRoots = []domain.Root{
	{Name: "A", Path: "/r/a"},
	{Name: "B", Path: "/r/b"},
}

func TestRootResolver_ExplicitTargetInsideRoot(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "/r/b/src/main.go")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/r/b", dir)
}

func TestRootResolver_ExplicitTargetOutsideRoots(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "/elsewhere/repo")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/elsewhere/repo", dir)
}

func TestRootResolver_ExplicitTargetWithEmptyWorkspace(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{}, "/tmp/x")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/x", dir)
}

func TestRootResolver_ExplicitTargetBeatsFocusedFile(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))
	ws := domain.Workspace{FocusedFile: "/r/a/readme.md", Roots: twoRoots}

	dir, ok, err := resolver.Resolve(context.Background(), ws, "/r/b/x")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/r/b", dir)
}

func TestRootResolver_FocusedFile(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))
	ws := domain.Workspace{FocusedFile: "/r/a/pkg/file.go", Roots: twoRoots}

	dir, ok, err := resolver.Resolve(context.Background(), ws, "")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/r/a", dir)
}

func TestRootResolver_FocusedFileOutsideRootsFallsThrough(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))
	ws := domain.Workspace{
		FocusedFile: "/tmp/scratch.txt",
		Roots:       []domain.Root{{Name: "only", Path: "/r/only"}},
	}

	dir, ok, err := resolver.Resolve(context.Background(), ws, "")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/r/only", dir)
}

func TestRootResolver_SingleRootNoPrompt(t *testing.T) {
	// Picker mock has no expectations: any call fails the test
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))
	ws := domain.Workspace{Roots: []domain.Root{{Name: "proj", Path: "/home/u/proj"}}}

	dir, ok, err := resolver.Resolve(context.Background(), ws, "")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/home/u/proj", dir)
}

func TestRootResolver_NoRoots(t *testing.T) {
	resolver := NewRootResolver(prefixContainment{}, portsmocks.NewMockRootPicker(t))

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{}, "")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)
}

func TestRootResolver_PromptsAmongSeveralRoots(t *testing.T) {
	picker := portsmocks.NewMockRootPicker(t)
	expectedItems := []ports.PickItem{
		{Label: "A", Detail: "/r/a"},
		{Label: "B", Detail: "/r/b"},
	}
	picker.EXPECT().Pick(mock.Anything, PickerTitle, expectedItems).Return(1, true, nil).Once()

	resolver := NewRootResolver(prefixContainment{}, picker)

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/r/b", dir)
}

func TestRootResolver_PromptCancelled(t *testing.T) {
	picker := portsmocks.NewMockRootPicker(t)
	picker.EXPECT().Pick(mock.Anything, mock.Anything, mock.Anything).Return(0, false, nil).Once()

	resolver := NewRootResolver(prefixContainment{}, picker)

	dir, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)
}

func TestRootResolver_PromptError(t *testing.T) {
	picker := portsmocks.NewMockRootPicker(t)
	picker.EXPECT().Pick(mock.Anything, mock.Anything, mock.Anything).Return(0, false, errors.New("no tty")).Once()

	resolver := NewRootResolver(prefixContainment{}, picker)

	_, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "")

	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "no tty")
}

func TestRootResolver_PromptInvalidIndex(t *testing.T) {
	picker := portsmocks.NewMockRootPicker(t)
	picker.EXPECT().Pick(mock.Anything, mock.Anything, mock.Anything).Return(5, true, nil).Once()

	resolver := NewRootResolver(prefixContainment{}, picker)

	_, ok, err := resolver.Resolve(context.Background(), domain.Workspace{Roots: twoRoots}, "")

	require.Error(t, err)
	assert.False(t, ok)
}
