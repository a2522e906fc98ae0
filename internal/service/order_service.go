package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

var ErrInvalidStatus = errors.New("invalid order status")

// estimatedDeliveryOffset срок доставки, прибавляемый к моменту создания
const estimatedDeliveryOffset = 3 * 24 * time.Hour

// OrderService журнал заказов: append-only коллекция, новые заказы в начале.
// Заказ неизменяем после создания, кроме статуса.
type OrderService struct {
	mu     sync.Mutex
	store  repository.Store
	log    *logrus.Logger
	delay  time.Duration // имитация сетевой задержки при создании
	lastID int64
	orders []domain.Order
}

func NewOrderService(store repository.Store, log *logrus.Logger, delay time.Duration) *OrderService {
	return &OrderService{
		store:  store,
		log:    log,
		delay:  delay,
		orders: repository.LoadCollection[domain.Order](store, repository.KeyOrders, log),
	}
}

// CreateOrder создает заказ из драфта и возвращает его id.
// Идентификатор временной (мс от эпохи), при совпадении с предыдущим
// увеличивается, чтобы оставаться уникальным. Начатая операция всегда
// доводится до конца, отмены нет.
func (s *OrderService) CreateOrder(ctx context.Context, draft domain.OrderDraft) (string, error) {
	if len(draft.Items) == 0 {
		return "", ErrInvalidInput
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	order := domain.Order{
		ID:                strconv.FormatInt(id, 10),
		Items:             draft.Items,
		CustomerInfo:      draft.CustomerInfo,
		DeliveryInfo:      draft.DeliveryInfo,
		PaymentInfo:       draft.PaymentInfo,
		TotalAmount:       draft.TotalAmount,
		Discount:          draft.Discount,
		FinalAmount:       draft.FinalAmount,
		Status:            domain.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryOffset),
	}
	// самый свежий заказ первым
	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist()
	s.log.Infof("order %s created, final amount %d", order.ID, order.FinalAmount)
	return order.ID, nil
}

// GetOrderByID линейный поиск заказа
func (s *OrderService) GetOrderByID(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ListOrders возвращает копию журнала, самые свежие заказы первыми
func (s *OrderService) ListOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UpdateOrderStatus заменяет статус заказа. Значение проверяется по
// справочнику, переходы между допустимыми значениями не ограничены.
func (s *OrderService) UpdateOrderStatus(id string, status domain.OrderStatus) error {
	if !domain.IsValidStatus(status) {
		return ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.persist()
			s.log.Infof("order %s status set to %s", id, status)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *OrderService) persist() {
	if err := repository.SaveCollection(s.store, repository.KeyOrders, s.orders); err != nil {
		s.log.Warnf("orders: persist failed: %v", err)
	}
}
