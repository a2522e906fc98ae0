package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupCart(t *testing.T) (*CartService, repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewCartService(store, testLogger()), store
}

func product(id int64, price int64) domain.Product {
	return domain.Product{ID: id, Title: "Товар", Price: price, Type: "tv"}
}

func TestAddToCartMergesQuantities(t *testing.T) {
	cart, _ := setupCart(t)
	p := product(1, 10000)
	if err := cart.AddToCart(p, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddToCart(p, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddToCart(p, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected single line, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	cart, _ := setupCart(t)
	if err := cart.AddToCart(product(1, 10000), 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart.UpdateQuantity(1, 2)
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	cart, _ := setupCart(t)
	if err := cart.AddToCart(product(1, 10000), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart.UpdateQuantity(1, 0)
	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart after zero quantity")
	}

	if err := cart.AddToCart(product(1, 10000), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart.UpdateQuantity(1, -3)
	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart after negative quantity")
	}
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	cart, _ := setupCart(t)
	cart.RemoveFromCart(42) // не должно паниковать и не ошибка
	if got := cart.GetTotalItems(); got != 0 {
		t.Fatalf("expected 0 items, got %d", got)
	}
}

func TestCartTotals(t *testing.T) {
	cart, _ := setupCart(t)
	if err := cart.AddToCart(product(1, 10000), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddToCart(product(2, 5000), 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := cart.GetTotalItems(); got != 5 {
		t.Fatalf("total items: expected 5, got %d", got)
	}
	if got := cart.GetTotalPrice(); got != 35000 {
		t.Fatalf("total price: expected 35000, got %d", got)
	}
}

func TestClearCart(t *testing.T) {
	cart, _ := setupCart(t)
	if err := cart.AddToCart(product(1, 10000), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart.ClearCart()
	if len(cart.Items()) != 0 || cart.GetTotalPrice() != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCartPersistsAcrossSessions(t *testing.T) {
	cart, store := setupCart(t)
	if err := cart.AddToCart(product(1, 10000), 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	// новая сессия над тем же хранилищем
	cart2 := NewCartService(store, testLogger())
	items := cart2.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart not restored: %v", items)
	}
}

func TestCartMalformedStoredDataTreatedAsEmpty(t *testing.T) {
	store := repository.NewMemoryStore()
	if err := store.Set(repository.KeyCart, "garbage"); err != nil {
		t.Fatal(err)
	}
	cart := NewCartService(store, testLogger())
	if len(cart.Items()) != 0 {
		t.Fatalf("expected empty cart for malformed data")
	}
}

func TestAddToFavoritesIdempotent(t *testing.T) {
	cart, _ := setupCart(t)
	p := product(1, 10000)
	cart.AddToFavorites(p)
	cart.AddToFavorites(p)
	if got := len(cart.Favorites()); got != 1 {
		t.Fatalf("expected 1 favorite, got %d", got)
	}
	if !cart.IsInFavorites(1) {
		t.Fatalf("expected product in favorites")
	}
}

func TestRemoveFromFavorites(t *testing.T) {
	cart, _ := setupCart(t)
	cart.AddToFavorites(product(1, 10000))
	cart.RemoveFromFavorites(1)
	if cart.IsInFavorites(1) {
		t.Fatalf("expected product removed from favorites")
	}
	cart.RemoveFromFavorites(1) // повторное удаление не ошибка
}

func TestFavoritesPersistAcrossSessions(t *testing.T) {
	cart, store := setupCart(t)
	cart.AddToFavorites(product(7, 10000))

	cart2 := NewCartService(store, testLogger())
	if !cart2.IsInFavorites(7) {
		t.Fatalf("favorites not restored")
	}
}
