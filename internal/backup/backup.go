package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/storage"
)

const (
	snapshotVersion = 1
	timestampFormat = "20060102-150405"
)

// ErrEmptySnapshot is returned for a backup file that holds none of the known keys.
var ErrEmptySnapshot = errors.New("backup contains no planner data")

// Info describes one backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Snapshot is the on-disk backup format: every stored blob, verbatim.
type Snapshot struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"createdAt"`
	Source    string                     `json:"source"`
	Blobs     map[string]json.RawMessage `json:"blobs"`
}

// Manager handles backup operations for one store.
type Manager struct {
	store     storage.Provider
	backupDir string
	now       func() time.Time
}

// NewManager creates a manager writing into <configDir>/backups.
func NewManager(store storage.Provider, configDir string) *Manager {
	return &Manager{
		store:     store,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the store and rotates old backups.
func (m *Manager) CreateBackup(ctx context.Context) (string, error) {
	return m.createBackup(ctx, false)
}

// skipRotation keeps a pre-restore snapshot from evicting the one being restored.
func (m *Manager) createBackup(ctx context.Context, skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	path, err := m.uniquePath(snap.CreatedAt)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	logger.Info("Backup created", "path", path, "keys", len(snap.Blobs))

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	return path, nil
}

func (m *Manager) snapshot(ctx context.Context) (Snapshot, error) {
	keys, err := m.store.Keys(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list stored keys: %w", err)
	}
	snap := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: m.now(),
		Source:    m.store.GetConfigPath(),
		Blobs:     make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		data, err := m.store.Get(ctx, key)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !json.Valid(data) {
			// Keep unreadable blobs restorable as-is.
			data, _ = json.Marshal(string(data))
		}
		snap.Blobs[key] = data
	}
	return snap, nil
}

func (m *Manager) uniquePath(at time.Time) (string, error) {
	stamp := at.Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
	}
}

// parseName extracts the timestamp and collision counter from a backup filename.
func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, 0, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)

	counter := 0
	if parts := strings.Split(stem, "-"); len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, 0, false
		}
		counter = n
		stem = parts[0] + "-" + parts[1]
	}
	ts, err := time.ParseInLocation(timestampFormat, stem, time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, counter, true
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	type entry struct {
		info    Info
		counter int
	}
	var found []entry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ts, counter, ok := parseName(e.Name())
		if !ok {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, entry{
			info:    Info{Path: filepath.Join(m.backupDir, e.Name()), Timestamp: ts, Size: fi.Size()},
			counter: counter,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].info.Timestamp.Equal(found[j].info.Timestamp) {
			return found[i].info.Timestamp.After(found[j].info.Timestamp)
		}
		return found[i].counter > found[j].counter
	})

	backups := make([]Info, len(found))
	for i, f := range found {
		backups[i] = f.info
	}
	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// AutoBackup creates a backup when the newest one is older than interval.
func (m *Manager) AutoBackup(ctx context.Context, interval time.Duration) (string, bool, error) {
	backups, err := m.ListBackups()
	if err != nil {
		return "", false, err
	}
	if len(backups) > 0 && m.now().Sub(backups[0].Timestamp) < interval {
		return "", false, nil
	}
	path, err := m.CreateBackup(ctx)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// ReadBackup loads and verifies a backup file.
func ReadBackup(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	if snap.Version > snapshotVersion {
		return Snapshot{}, fmt.Errorf("backup version %d is newer than supported version %d", snap.Version, snapshotVersion)
	}
	for _, key := range []string{constants.TasksKey, constants.SettingsKey, constants.StatsKey} {
		if _, ok := snap.Blobs[key]; ok {
			return snap, nil
		}
	}
	return Snapshot{}, ErrEmptySnapshot
}

// RestoreBackup writes every blob of a backup back into the store, after
// taking a snapshot of the current contents.
func (m *Manager) RestoreBackup(ctx context.Context, path string) error {
	snap, err := ReadBackup(path)
	if err != nil {
		return err
	}

	current, err := m.createBackup(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to backup current data before restore: %w", err)
	}
	logger.Info("Created backup of current data", "path", filepath.Base(current))

	keys := make([]string, 0, len(snap.Blobs))
	for key := range snap.Blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := m.store.Put(ctx, key, snap.Blobs[key]); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", removeErr)
		}
		return err
	}
	return nil
}
