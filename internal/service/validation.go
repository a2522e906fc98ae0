package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^\+998\d{9}$`)
	expiryRe  = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe     = regexp.MustCompile(`^\d{3}$`)
	digitsRe  = regexp.MustCompile(`\d`)
	nonDigits = regexp.MustCompile(`\D`)
)

// ValidationErrors ошибки валидации формы по полям
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NormalizePhone приводит номер к виду +998XXXXXXXXX: отбрасывает все,
// кроме цифр; остаток с кодом страны получает +, без кода — префикс +998.
// Ввод, начинающийся с "+", но без цифр кода, возвращается как есть.
func NormalizePhone(raw string) string {
	numbers := nonDigits.ReplaceAllString(raw, "")
	if strings.HasPrefix(numbers, "998") {
		return "+" + numbers
	}
	if len(numbers) > 0 && !strings.HasPrefix(raw, "+") {
		return "+998" + numbers
	}
	return raw
}

func validateCustomerInfo(info domain.CustomerInfo) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(info.FirstName) == "" {
		errs["firstName"] = "Введите имя"
	}
	if strings.TrimSpace(info.LastName) == "" {
		errs["lastName"] = "Введите фамилию"
	}
	if strings.TrimSpace(info.Email) == "" {
		errs["email"] = "Введите email"
	} else if !emailRe.MatchString(info.Email) {
		errs["email"] = "Введите корректный email"
	}
	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = "Введите номер телефона"
	} else if !phoneRe.MatchString(info.Phone) {
		errs["phone"] = "Введите номер в формате +998 XX XXX XX XX"
	}
	return errs
}

func validateDeliveryInfo(info domain.DeliveryInfo) ValidationErrors {
	errs := ValidationErrors{}
	switch info.Type {
	case domain.DeliveryCourier:
		if strings.TrimSpace(info.Address) == "" {
			errs["address"] = "Введите адрес доставки"
		}
		if strings.TrimSpace(info.City) == "" {
			errs["city"] = "Введите город"
		}
	case domain.DeliveryPickup:
		if info.PickupPoint == "" {
			errs["pickupPoint"] = "Выберите пункт выдачи"
		}
	case domain.DeliveryPost:
		if strings.TrimSpace(info.Address) == "" {
			errs["address"] = "Введите адрес доставки"
		}
		if strings.TrimSpace(info.City) == "" {
			errs["city"] = "Введите город"
		}
		if strings.TrimSpace(info.PostalCode) == "" {
			errs["postalCode"] = "Введите почтовый индекс"
		}
	default:
		errs["type"] = "Выберите способ доставки"
	}
	return errs
}

func validatePaymentInfo(info domain.PaymentInfo) ValidationErrors {
	errs := ValidationErrors{}
	switch info.Method {
	case domain.PaymentCard:
		number := strings.ReplaceAll(info.CardNumber, " ", "")
		if number == "" {
			errs["cardNumber"] = "Введите номер карты"
		} else if len(number) != 16 || len(digitsRe.FindAllString(number, -1)) != 16 {
			errs["cardNumber"] = "Номер карты должен содержать 16 цифр"
		}
		if strings.TrimSpace(info.CardHolder) == "" {
			errs["cardHolder"] = "Введите имя держателя карты"
		}
		if strings.TrimSpace(info.ExpiryDate) == "" {
			errs["expiryDate"] = "Введите срок действия"
		} else if !expiryRe.MatchString(info.ExpiryDate) {
			errs["expiryDate"] = "Формат: ММ/ГГ"
		}
		if strings.TrimSpace(info.CVV) == "" {
			errs["cvv"] = "Введите CVV код"
		} else if !cvvRe.MatchString(info.CVV) {
			errs["cvv"] = "CVV должен содержать 3 цифры"
		}
	case domain.PaymentCash, domain.PaymentOnline:
		// реквизиты не требуются
	default:
		errs["method"] = "Выберите способ оплаты"
	}
	return errs
}
