package repository

import "errors"

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// Ключи хранилища. Каждый ключ держит целиком сериализованную коллекцию.
const (
	KeyCart      = "uzum-cart"
	KeyFavorites = "uzum-favorites"
	KeyOrders    = "uzum-orders"
	KeyUser      = "uzum-user"
	KeyUsers     = "uzum-users"
)

// Store плоское key-value хранилище строковых блобов.
// Без транзакций и без TTL: коллекция читается и переписывается целиком.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
