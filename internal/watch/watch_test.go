package watch_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/internal/watch"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func start(t *testing.T, path string, reload watch.ReloadFunc) {
	t.Helper()
	w, err := watch.New(path, reload, watch.WithDebounce(50*time.Millisecond), watch.WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
		require.NoError(t, w.Close())
	})
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	runs := make(chan string, 8)
	start(t, path, func(_ context.Context, runID string) error {
		runs <- runID
		return nil
	})

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
	select {
	case <-runs:
		t.Fatal("reload for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}

	// A burst of writes settles into one reload.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, 0o600))
	}
	select {
	case id := <-runs:
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	select {
	case <-runs:
		t.Fatal("burst produced a second reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_FailedReloadKeepsWatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	calls := make(chan struct{}, 8)
	start(t, path, func(context.Context, string) error {
		calls <- struct{}{}
		return errors.New("bad data")
	})

	for i := 0; i < 2; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, 0o600))
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("no reload for write %d", i)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := watch.New("recipes.yaml", nil)
	require.Error(t, err)

	_, err = watch.New(filepath.Join(t.TempDir(), "missing", "recipes.yaml"), func(context.Context, string) error { return nil })
	require.Error(t, err)
}
