package service

import (
	"context"
	"testing"
	"time"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

func setupOrders(t *testing.T) (*OrderService, repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewOrderService(store, testLogger(), 0), store
}

func draft(final int64) domain.OrderDraft {
	return domain.OrderDraft{
		Items:       []domain.CartItem{{Product: product(1, 50000), Quantity: 2}},
		TotalAmount: 100000,
		Discount:    10000,
		FinalAmount: final,
	}
}

func TestCreateOrderAmounts(t *testing.T) {
	svc, _ := setupOrders(t)
	id, err := svc.CreateOrder(context.Background(), domain.OrderDraft{
		Items:       []domain.CartItem{{Product: product(1, 50000), Quantity: 2}},
		TotalAmount: 100000,
		Discount:    10000,
		FinalAmount: 105000, // 100000 - 10000 + доставка 15000
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	o, err := svc.GetOrderByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if o.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending, got %s", o.Status)
	}
	if o.FinalAmount != 105000 {
		t.Fatalf("final amount: %d", o.FinalAmount)
	}
	if got := o.EstimatedDelivery.Sub(o.CreatedAt); got != 72*time.Hour {
		t.Fatalf("estimated delivery offset: %v", got)
	}
}

func TestCreateOrderEmptyDraft(t *testing.T) {
	svc, _ := setupOrders(t)
	if _, err := svc.CreateOrder(context.Background(), domain.OrderDraft{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrdersMostRecentFirst(t *testing.T) {
	svc, _ := setupOrders(t)
	first, err := svc.CreateOrder(context.Background(), draft(105000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.CreateOrder(context.Background(), draft(105000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first == second {
		t.Fatalf("ids must be unique")
	}
	orders := svc.ListOrders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second || orders[1].ID != first {
		t.Fatalf("expected most recent first: %v", []string{orders[0].ID, orders[1].ID})
	}
}

func TestGetOrderByIDNotFound(t *testing.T) {
	svc, _ := setupOrders(t)
	if _, err := svc.GetOrderByID("12345"); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := setupOrders(t)
	id, err := svc.CreateOrder(context.Background(), draft(105000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateOrderStatus(id, domain.OrderStatusShipped); err != nil {
		t.Fatalf("update: %v", err)
	}
	o, _ := svc.GetOrderByID(id)
	if o.Status != domain.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", o.Status)
	}

	// переходы между допустимыми значениями не ограничены
	if err := svc.UpdateOrderStatus(id, domain.OrderStatusPending); err != nil {
		t.Fatalf("backward transition must be allowed: %v", err)
	}

	if err := svc.UpdateOrderStatus(id, "teleported"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateOrderStatus("777", domain.OrderStatusShipped); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrdersPersistAcrossSessions(t *testing.T) {
	svc, store := setupOrders(t)
	id, err := svc.CreateOrder(context.Background(), draft(105000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	svc2 := NewOrderService(store, testLogger(), 0)
	o, err := svc2.GetOrderByID(id)
	if err != nil {
		t.Fatalf("order not restored: %v", err)
	}
	if o.FinalAmount != 105000 {
		t.Fatalf("final amount after reload: %d", o.FinalAmount)
	}
}
