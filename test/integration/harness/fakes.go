package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

// FakeFork is a stand-in Fork executable that records its arguments
type FakeFork struct {
	Path       string
	recordPath string
}

// NewFakeFork writes an executable script that records each argument on its own line.
func NewFakeFork(tb testing.TB) *FakeFork {
	tb.Helper()

	dir := tb.TempDir()
	record := filepath.Join(dir, "args.txt")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"" + record + ".tmp\" && mv \"" + record + ".tmp\" \"" + record + "\"\n"

	return &FakeFork{
		Path:       writeExecutable(tb, dir, "Fork.exe", script),
		recordPath: record,
	}
}

// WaitForArgs waits until the fake was launched and returns its arguments.
func (f *FakeFork) WaitForArgs(tb testing.TB) []string {
	tb.Helper()

	var data []byte
	require.Eventually(tb, func() bool {
		var err error
		data, err = os.ReadFile(f.recordPath)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "fake Fork was never launched")

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// Launched reports whether the fake has been run.
func (f *FakeFork) Launched() bool {
	_, err := os.Stat(f.recordPath)
	return err == nil
}

// NewFakeTranslator writes a wslpath stand-in: -w prefixes "W:" and -u strips it.
func NewFakeTranslator(tb testing.TB) string {
	tb.Helper()

	script := `#!/bin/sh
case "$1" in
  -w) printf 'W:%s\n' "$2" ;;
  -u) printf '%s\n' "${2#W:}" ;;
  *) echo "usage: wslpath (-w|-u) path" >&2; exit 2 ;;
esac
`
	return writeExecutable(tb, tb.TempDir(), "wslpath", script)
}

// NewFailingTranslator writes a wslpath stand-in that always fails.
func NewFailingTranslator(tb testing.TB) string {
	tb.Helper()

	script := "#!/bin/sh\necho \"wslpath: $2: No such file or directory\" >&2\nexit 1\n"
	return writeExecutable(tb, tb.TempDir(), "wslpath", script)
}

// NewTestRepo initializes a git repository with a nested directory and
// returns the repository root and the nested directory.
func NewTestRepo(tb testing.TB) (root, nested string) {
	tb.Helper()

	root = filepath.Join(tb.TempDir(), "repo")
	_, err := gogit.PlainInit(root, false)
	require.NoError(tb, err)

	nested = filepath.Join(root, "pkg", "sub")
	require.NoError(tb, os.MkdirAll(nested, 0755))

	return root, nested
}

func writeExecutable(tb testing.TB, dir, name, content string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, []byte(content), 0755))
	return path
}
