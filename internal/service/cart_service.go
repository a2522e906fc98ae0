package service

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// CartService корзина и избранное активной сессии.
// Состояние держится в памяти и целиком переписывается в хранилище
// на каждую мутацию; битые сохраненные данные считаются пустыми.
type CartService struct {
	mu        sync.Mutex
	store     repository.Store
	log       *logrus.Logger
	items     []domain.CartItem
	favorites []domain.Product
}

func NewCartService(store repository.Store, log *logrus.Logger) *CartService {
	return &CartService{
		store:     store,
		log:       log,
		items:     repository.LoadCollection[domain.CartItem](store, repository.KeyCart, log),
		favorites: repository.LoadCollection[domain.Product](store, repository.KeyFavorites, log),
	}
}

// AddToCart добавляет товар: существующая позиция получает +quantity,
// новая вставляется в конец
func (s *CartService) AddToCart(product domain.Product, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity += quantity
			s.persistCart()
			return nil
		}
	}
	s.items = append(s.items, domain.CartItem{Product: product, Quantity: quantity})
	s.persistCart()
	return nil
}

// RemoveFromCart удаляет позицию; отсутствующая позиция не ошибка
func (s *CartService) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.persistCart()
}

// UpdateQuantity выставляет количество ровно; quantity <= 0 удаляет позицию
func (s *CartService) UpdateQuantity(productID, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(productID)
		s.persistCart()
		return
	}
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persistCart()
}

func (s *CartService) removeLocked(productID int64) {
	out := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	s.items = out
}

// Items возвращает копию позиций корзины
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// GetTotalItems суммарное количество единиц по всем позициям
func (s *CartService) GetTotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// GetTotalPrice сумма price*quantity по всем позициям
func (s *CartService) GetTotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.items)
}

func totalPrice(items []domain.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// ClearCart опустошает корзину
func (s *CartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistCart()
}

// AddToFavorites вставляет снимок товара; повторное добавление no-op
func (s *CartService) AddToFavorites(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.favorites {
		if p.ID == product.ID {
			return
		}
	}
	s.favorites = append(s.favorites, product)
	s.persistFavorites()
}

// RemoveFromFavorites удаляет товар из избранного, если он там есть
func (s *CartService) RemoveFromFavorites(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.favorites[:0]
	for _, p := range s.favorites {
		if p.ID != productID {
			out = append(out, p)
		}
	}
	s.favorites = out
	s.persistFavorites()
}

// IsInFavorites проверка принадлежности
func (s *CartService) IsInFavorites(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.favorites {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Favorites возвращает копию избранного
func (s *CartService) Favorites() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// Запись хранилища считается всегда успешной; отказ логируется,
// состояние в памяти остается актуальным.
func (s *CartService) persistCart() {
	if err := repository.SaveCollection(s.store, repository.KeyCart, s.items); err != nil {
		s.log.Warnf("cart: persist failed: %v", err)
	}
}

func (s *CartService) persistFavorites() {
	if err := repository.SaveCollection(s.store, repository.KeyFavorites, s.favorites); err != nil {
		s.log.Warnf("favorites: persist failed: %v", err)
	}
}
