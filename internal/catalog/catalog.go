package catalog

import (
	"sort"
	"strings"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

// Filter параметры фильтрации и сортировки каталога
type Filter struct {
	Query    string // подстрока названия, без учета регистра
	Type     string
	MinPrice *int64
	MaxPrice *int64
	Sort     string // price-asc, price-desc, rating
}

// Catalog статический read-only каталог товаров, загружается один раз
type Catalog struct {
	products []domain.Product
}

func New(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

// NewSeeded возвращает каталог с демонстрационным ассортиментом
func NewSeeded() *Catalog {
	return New(seedProducts)
}

// ListAll возвращает копию всего ассортимента в исходном порядке
func (c *Catalog) ListAll() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID линейный поиск товара
func (c *Catalog) GetByID(id int64) (*domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List возвращает товары, подходящие под фильтр
func (c *Catalog) List(f Filter) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if !containsIgnoreCase(p.Title, f.Query) {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	switch f.Sort {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
