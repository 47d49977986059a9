package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the name of the store file inside the config directory.
const ConfigFileName = "config.toml"

// FileStore implements store persistence using a TOML file on disk.
type FileStore struct {
	dir  string
	path string
}

// NewFileStore creates a FileStore bound to the given config directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:  dir,
		path: filepath.Join(dir, ConfigFileName),
	}
}

// Path returns the full path of the config file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the store from disk, creating the config directory if needed.
// A missing file yields an empty store which is written out immediately, so
// a fresh run always leaves a valid, inspectable file behind.
func (f *FileStore) Load() (*Store, error) {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		s := NewStore()
		if err := f.Save(s); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	s := NewStore()
	for _, record := range cfg.Items {
		it, err := record.toModel()
		if err != nil {
			return nil, err
		}
		if err := s.Add(it); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return s, nil
}

// Save writes the whole store to the config file.
func (f *FileStore) Save(s *Store) error {
	cfg := configFile{Items: make([]itemRecord, 0, s.Len())}
	for _, it := range s.Items() {
		record, err := toRecord(it)
		if err != nil {
			return err
		}
		cfg.Items = append(cfg.Items, record)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
