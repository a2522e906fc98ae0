package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileStore реализация Store поверх одного JSON-файла.
// Весь словарь ключ→блоб переписывается на каждую мутацию.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data map[string]string
	log  *logrus.Logger
}

// NewFileStore загружает словарь из файла. Отсутствующий или битый файл
// трактуется как пустое хранилище.
func NewFileStore(path string, log *logrus.Logger) *FileStore {
	fs := &FileStore{path: path, data: make(map[string]string), log: log}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("store: cannot read %s, starting empty: %v", path, err)
		}
		return fs
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		log.Warnf("store: malformed data in %s, starting empty: %v", path, err)
		fs.data = make(map[string]string)
	}
	return fs
}

var _ Store = (*FileStore)(nil)

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return f.flush()
}

// flush пишет словарь целиком; вызывается под блокировкой записи
func (f *FileStore) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", f.path, err)
	}
	return nil
}
