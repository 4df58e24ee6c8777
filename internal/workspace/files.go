// Package workspace manages the small set of agent persona files
// (SOUL.md, IDENTITY.md, USER.md, AGENTS.md) with per-file edit history
// and revert. The live files are plain markdown in the workspace
// directory; each file's history lives in its own JSON document under
// the data directory.
package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/docstore"
	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// allowedFiles is the fixed set of editable workspace file names. The
// allow-list doubles as path traversal protection: names never reach
// the filesystem without passing it.
var allowedFiles = []string{"SOUL.md", "IDENTITY.md", "USER.md", "AGENTS.md"}

// fileState couples one workspace file with its history document and
// the lock serializing snapshot-then-overwrite sequences.
type fileState struct {
	mu      sync.Mutex
	path    string
	history *docstore.Document[[]domain.HistoryEntry]
}

// Manager provides read, write, history, and revert over the allowed
// workspace files.
type Manager struct {
	files map[string]*fileState
	clk   clock.Clock
}

// NewManager creates a workspace file manager. Live files reside in
// workspaceDir; history documents reside in dataDir.
func NewManager(workspaceDir, dataDir string, clk clock.Clock) *Manager {
	files := make(map[string]*fileState, len(allowedFiles))
	for _, name := range allowedFiles {
		histPath := filepath.Join(dataDir, name+constants.HistoryFileSuffix)
		files[name] = &fileState{
			path: filepath.Join(workspaceDir, name),
			history: docstore.New(histPath, func() []domain.HistoryEntry {
				return []domain.HistoryEntry{}
			}),
		}
	}
	return &Manager{files: files, clk: clk}
}

// Allowed reports whether name is an editable workspace file.
func (m *Manager) Allowed(name string) bool {
	_, ok := m.files[name]
	return ok
}

// Read returns the live content of a workspace file. A file that does
// not exist yet reads as empty content with no modification time.
func (m *Manager) Read(name string) (domain.WorkspaceFile, error) {
	state, ok := m.files[name]
	if !ok {
		return domain.WorkspaceFile{}, warroomerrors.ErrFileNotAllowed
	}

	data, err := os.ReadFile(state.path)
	if err != nil {
		return domain.WorkspaceFile{}, nil
	}
	out := domain.WorkspaceFile{Content: string(data)}
	if info, err := os.Stat(state.path); err == nil {
		out.LastModified = info.ModTime().UTC().Format(time.RFC3339)
	}
	return out, nil
}

// Write replaces the live content of a workspace file. The previous
// content is captured into history first, so every overwrite is
// revertable; blank previous content is not worth a snapshot.
func (m *Manager) Write(name, content string) error {
	state, ok := m.files[name]
	if !ok {
		return warroomerrors.ErrFileNotAllowed
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if err := m.snapshotLocked(state); err != nil {
		return warroomerrors.Wrapf(err, "failed to snapshot %s", name)
	}
	if err := writeLiveFile(state.path, content); err != nil {
		return warroomerrors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}

// History returns the captured prior states of a workspace file, oldest
// first.
func (m *Manager) History(name string) ([]domain.HistoryEntry, error) {
	state, ok := m.files[name]
	if !ok {
		return nil, warroomerrors.ErrFileNotAllowed
	}
	return state.history.Read(), nil
}

// Revert restores a workspace file to the history entry at index. The
// current live content is snapshotted first so the revert itself can be
// undone. The index refers to the history as returned by History,
// before the new snapshot is appended.
func (m *Manager) Revert(name string, index int) (domain.WorkspaceFile, error) {
	state, ok := m.files[name]
	if !ok {
		return domain.WorkspaceFile{}, warroomerrors.ErrFileNotAllowed
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	history := state.history.Read()
	if index < 0 || index >= len(history) {
		return domain.WorkspaceFile{}, warroomerrors.ErrInvalidHistoryIndex
	}
	target := history[index].Content

	if err := m.snapshotLocked(state); err != nil {
		return domain.WorkspaceFile{}, warroomerrors.Wrapf(err, "failed to snapshot %s", name)
	}
	if err := writeLiveFile(state.path, target); err != nil {
		return domain.WorkspaceFile{}, warroomerrors.Wrapf(err, "failed to revert %s", name)
	}

	return domain.WorkspaceFile{
		Content:      target,
		LastModified: clock.NowRFC3339(m.clk),
	}, nil
}

// snapshotLocked appends the current live content to the file's history
// and evicts the oldest entries beyond the cap. Missing or blank live
// content is skipped. Caller holds state.mu.
func (m *Manager) snapshotLocked(state *fileState) error {
	data, err := os.ReadFile(state.path)
	if err != nil {
		return nil
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil
	}

	entry := domain.HistoryEntry{
		Timestamp: clock.NowRFC3339(m.clk),
		Content:   content,
	}
	_, err = state.history.Update(func(history []domain.HistoryEntry) ([]domain.HistoryEntry, error) {
		history = append(history, entry)
		if excess := len(history) - constants.HistoryCap; excess > 0 {
			history = history[excess:]
		}
		return history, nil
	})
	return err
}

func writeLiveFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPerm); err != nil {
		return err
	}
	return docstore.AtomicWrite(path, []byte(content))
}
