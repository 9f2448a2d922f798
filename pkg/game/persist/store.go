package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store keeps the two blobs the game persists.
type Store interface {
	LoadPlayer() ([]byte, error)
	SavePlayer(data []byte) error
	LoadMission() ([]byte, error)
	SaveMission(data []byte) error
	ClearMission() error
}

const (
	playerFile  = "player.bin"
	missionFile = "mission.bin"
)

// FileStore keeps one file per blob in a directory.
type FileStore struct {
	dir   string
	mutex sync.Mutex
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) LoadPlayer() ([]byte, error)   { return f.read(playerFile) }
func (f *FileStore) SavePlayer(data []byte) error  { return f.write(playerFile, data) }
func (f *FileStore) LoadMission() ([]byte, error)  { return f.read(missionFile) }
func (f *FileStore) SaveMission(data []byte) error { return f.write(missionFile, data) }

// ClearMission removes the mission blob. A missing blob is not an error.
func (f *FileStore) ClearMission() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	err := os.Remove(filepath.Join(f.dir, missionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing mission: %w", err)
	}
	return nil
}

func (f *FileStore) read(name string) ([]byte, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// write replaces the file via a rename so a crash never leaves half a blob.
func (f *FileStore) write(name string, data []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	path := filepath.Join(f.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// MemoryStore keeps blobs in memory.
type MemoryStore struct {
	mutex sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (ms *MemoryStore) LoadPlayer() ([]byte, error)   { return ms.get(playerFile) }
func (ms *MemoryStore) SavePlayer(data []byte) error  { return ms.put(playerFile, data) }
func (ms *MemoryStore) LoadMission() ([]byte, error)  { return ms.get(missionFile) }
func (ms *MemoryStore) SaveMission(data []byte) error { return ms.put(missionFile, data) }

func (ms *MemoryStore) ClearMission() error {
	ms.mutex.Lock()
	delete(ms.blobs, missionFile)
	ms.mutex.Unlock()
	return nil
}

func (ms *MemoryStore) get(name string) ([]byte, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	data, ok := ms.blobs[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (ms *MemoryStore) put(name string, data []byte) error {
	ms.mutex.Lock()
	ms.blobs[name] = append([]byte(nil), data...)
	ms.mutex.Unlock()
	return nil
}
