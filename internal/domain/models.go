package domain

import "time"

// Product представляет товар каталога
type Product struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Colors         []string `json:"colors,omitempty"`
	Rating         float64  `json:"rating"`
	Price          int64    `json:"price"`
	IsBlackFriday  bool     `json:"isBlackFriday"`
	SalePercentage int      `json:"salePercentage"`
	Media          []string `json:"media,omitempty"`
	Type           string   `json:"type"`
	Dioganal       []string `json:"dioganal,omitempty"` // для телевизоров
}

// CartItem позиция корзины: снимок товара плюс желаемое количество
type CartItem struct {
	Product
	Quantity int64 `json:"quantity"`
}

// CustomerInfo контактные данные покупателя
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeliveryType способ доставки
type DeliveryType string

const (
	DeliveryCourier DeliveryType = "courier"
	DeliveryPickup  DeliveryType = "pickup"
	DeliveryPost    DeliveryType = "post"
)

// DeliveryInfo параметры выбранного способа доставки.
// Набор обязательных полей зависит от Type, Cost выводится из Type.
type DeliveryInfo struct {
	Type        DeliveryType `json:"type"`
	Address     string       `json:"address,omitempty"`
	City        string       `json:"city,omitempty"`
	PostalCode  string       `json:"postalCode,omitempty"`
	PickupPoint string       `json:"pickupPoint,omitempty"`
	Cost        int64        `json:"cost"`
}

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// PaymentInfo реквизиты оплаты; поля карты обязательны только при Method == card
type PaymentInfo struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"cardNumber,omitempty"`
	CardHolder string        `json:"cardHolder,omitempty"`
	ExpiryDate string        `json:"expiryDate,omitempty"`
	CVV        string        `json:"cvv,omitempty"`
}

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValidStatus проверяет, что значение статуса известно системе
func IsValidStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderDraft данные заказа, собранные мастером оформления до создания
type OrderDraft struct {
	Items        []CartItem   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo"`
	TotalAmount  int64        `json:"totalAmount"`
	Discount     int64        `json:"discount"`
	FinalAmount  int64        `json:"finalAmount"`
}

// Order оформленный заказ. Неизменяем после создания, кроме поля Status.
type Order struct {
	ID                string       `json:"id"`
	Items             []CartItem   `json:"items"`
	CustomerInfo      CustomerInfo `json:"customerInfo"`
	DeliveryInfo      DeliveryInfo `json:"deliveryInfo"`
	PaymentInfo       PaymentInfo  `json:"paymentInfo"`
	TotalAmount       int64        `json:"totalAmount"`
	Discount          int64        `json:"discount"`
	FinalAmount       int64        `json:"finalAmount"`
	Status            OrderStatus  `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
}

// User авторизованный пользователь (без пароля)
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Account учетная запись, как она хранится: User плюс хеш пароля
type Account struct {
	User
	PasswordHash string `json:"passwordHash"`
}
