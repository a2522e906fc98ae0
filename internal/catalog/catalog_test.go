package catalog

import (
	"testing"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/domain"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Телевизор Samsung", Price: 5000, Rating: 4.7, Type: "tv"},
		{ID: 2, Title: "Смартфон Xiaomi", Price: 3000, Rating: 4.8, Type: "smartphone"},
		{ID: 3, Title: "Телевизор Artel", Price: 2000, Rating: 4.3, Type: "tv"},
	}
}

func TestGetByID(t *testing.T) {
	c := New(testProducts())
	p, err := c.GetByID(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "Смартфон Xiaomi" {
		t.Fatalf("wrong product: %+v", p)
	}
	if _, err := c.GetByID(99); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	c := New(testProducts())

	got := c.List(Filter{Type: "tv"})
	if len(got) != 2 {
		t.Fatalf("type filter: %d", len(got))
	}

	got = c.List(Filter{Query: "телевизор"})
	if len(got) != 2 {
		t.Fatalf("query filter is case-insensitive: %d", len(got))
	}

	min := int64(2500)
	got = c.List(Filter{MinPrice: &min})
	if len(got) != 2 {
		t.Fatalf("min price filter: %d", len(got))
	}

	got = c.List(Filter{Sort: "price-asc"})
	if got[0].ID != 3 || got[2].ID != 1 {
		t.Fatalf("price sort: %v", got)
	}

	got = c.List(Filter{Sort: "rating"})
	if got[0].ID != 2 {
		t.Fatalf("rating sort: %v", got)
	}
}

func TestListAllReturnsCopy(t *testing.T) {
	c := New(testProducts())
	all := c.ListAll()
	all[0].Title = "mutated"
	again := c.ListAll()
	if again[0].Title == "mutated" {
		t.Fatalf("ListAll must return a copy")
	}
}
