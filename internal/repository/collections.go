package repository

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// LoadCollection читает коллекцию по ключу. Отсутствующий ключ и битые
// данные дают пустую коллекцию: загрузка никогда не падает.
func LoadCollection[T any](s Store, key string, log *logrus.Logger) []T {
	raw, ok := s.Get(key)
	if !ok {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warnf("store: malformed collection under %q, treating as empty: %v", key, err)
		return nil
	}
	return out
}

// SaveCollection сериализует и переписывает коллекцию целиком
func SaveCollection[T any](s Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}

// LoadRecord читает одиночную запись по ключу; ok=false, если записи нет
// или данные не разбираются.
func LoadRecord[T any](s Store, key string, log *logrus.Logger) (T, bool) {
	var out T
	raw, ok := s.Get(key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warnf("store: malformed record under %q, treating as absent: %v", key, err)
		var zero T
		return zero, false
	}
	return out, true
}

// SaveRecord сериализует и сохраняет одиночную запись
func SaveRecord[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
