package service

import (
	"context"
	"errors"
	"math"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
)

var ErrInvalidState = errors.New("invalid state")

// Стоимость доставки зависит только от выбранного способа
var deliveryCosts = map[domain.DeliveryType]int64{
	domain.DeliveryCourier: 15000,
	domain.DeliveryPickup:  0,
	domain.DeliveryPost:    8000,
}

// DeliveryCost возвращает фиксированную стоимость для способа доставки
func DeliveryCost(t domain.DeliveryType) int64 {
	return deliveryCosts[t]
}

// PickupPoints доступные пункты выдачи
var PickupPoints = []string{
	"ТЦ Mega Planet, ул. Ойбека 44",
	"ТЦ Next, ул. Шахрисабз 1",
	"ТЦ Compass, ул. Бабура 174",
	"Магазин на Чиланзаре, ул. Катартал 1",
}

// Шаги мастера оформления
const (
	StepContactInfo = 1
	StepDelivery    = 2
	StepPayment     = 3
)

// CheckoutWizard линейный трехшаговый мастер оформления заказа:
// контакты → доставка → оплата. Переход вперед заблокирован, пока
// активный шаг не проходит валидацию; назад — всегда свободен.
// Состояние мастера нигде не сохраняется и умирает вместе с ним.
type CheckoutWizard struct {
	cart   *CartService
	orders *OrderService

	step     int
	customer domain.CustomerInfo
	delivery domain.DeliveryInfo
	payment  domain.PaymentInfo
}

// NewCheckoutWizard создает мастер на первом шаге. Контакты
// заполняются данными авторизованного пользователя, если он есть.
func NewCheckoutWizard(cart *CartService, orders *OrderService, user *domain.User) *CheckoutWizard {
	w := &CheckoutWizard{
		cart:   cart,
		orders: orders,
		step:   StepContactInfo,
		delivery: domain.DeliveryInfo{
			Type: domain.DeliveryCourier,
			Cost: DeliveryCost(domain.DeliveryCourier),
		},
		payment: domain.PaymentInfo{Method: domain.PaymentCard},
	}
	if user != nil {
		w.customer = domain.CustomerInfo{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     NormalizePhone(user.Phone),
		}
	}
	return w
}

// Step текущий шаг, 1–3
func (w *CheckoutWizard) Step() int { return w.step }

func (w *CheckoutWizard) CustomerInfo() domain.CustomerInfo { return w.customer }
func (w *CheckoutWizard) DeliveryInfo() domain.DeliveryInfo { return w.delivery }
func (w *CheckoutWizard) PaymentInfo() domain.PaymentInfo   { return w.payment }

// SetCustomerInfo запоминает контакты, нормализуя телефон
func (w *CheckoutWizard) SetCustomerInfo(info domain.CustomerInfo) {
	info.Phone = NormalizePhone(info.Phone)
	w.customer = info
}

// SetDeliveryInfo запоминает параметры доставки; стоимость выводится
// из способа и не принимается извне
func (w *CheckoutWizard) SetDeliveryInfo(info domain.DeliveryInfo) {
	info.Cost = DeliveryCost(info.Type)
	w.delivery = info
}

// SetPaymentInfo запоминает реквизиты оплаты
func (w *CheckoutWizard) SetPaymentInfo(info domain.PaymentInfo) {
	w.payment = info
}

// Next валидирует активный шаг и продвигает мастер. Ошибки валидации
// возвращаются по полям и не меняют состояние.
func (w *CheckoutWizard) Next() error {
	if errs := w.validateStep(w.step); len(errs) > 0 {
		return errs
	}
	if w.step >= StepPayment {
		return ErrInvalidState
	}
	w.step++
	return nil
}

// Prev возвращает мастер на шаг назад без валидации
func (w *CheckoutWizard) Prev() {
	if w.step > StepContactInfo {
		w.step--
	}
}

func (w *CheckoutWizard) validateStep(step int) ValidationErrors {
	switch step {
	case StepContactInfo:
		return validateCustomerInfo(w.customer)
	case StepDelivery:
		return validateDeliveryInfo(w.delivery)
	case StepPayment:
		return validatePaymentInfo(w.payment)
	}
	return nil
}

// Totals суммы заказа: полная стоимость корзины, скидка 10% и итог
// с учетом доставки
func (w *CheckoutWizard) Totals() (total, discount, final int64) {
	total = w.cart.GetTotalPrice()
	discount = int64(math.Round(float64(total) * 0.1))
	final = total - discount + w.delivery.Cost
	return total, discount, final
}

// PlaceOrder завершает оформление: допустим только с третьего шага при
// прошедшей валидации и непустой корзине. Передает драфт журналу
// заказов, очищает корзину и возвращает id нового заказа. После
// успешного вызова мастер подлежит выбрасыванию.
func (w *CheckoutWizard) PlaceOrder(ctx context.Context) (string, error) {
	if w.step != StepPayment {
		return "", ErrInvalidState
	}
	if errs := w.validateStep(StepPayment); len(errs) > 0 {
		return "", errs
	}
	items := w.cart.Items()
	if len(items) == 0 {
		return "", ErrInvalidState
	}
	total, discount, final := w.Totals()
	id, err := w.orders.CreateOrder(ctx, domain.OrderDraft{
		Items:        items,
		CustomerInfo: w.customer,
		DeliveryInfo: w.delivery,
		PaymentInfo:  w.payment,
		TotalAmount:  total,
		Discount:     discount,
		FinalAmount:  final,
	})
	if err != nil {
		return "", err
	}
	w.cart.ClearCart()
	return id, nil
}
