package catalog

import "github.com/Bloody-Jeff/uzum-market-clone/internal/domain"

// Демонстрационный ассортимент. Цены в сумах.
var seedProducts = []domain.Product{
	{
		ID:             1,
		Title:          "Телевизор Samsung Crystal UHD 4K",
		Description:    "Smart TV с поддержкой HDR10+ и голосовым управлением",
		Colors:         []string{"black"},
		Rating:         4.7,
		Price:          5499000,
		SalePercentage: 15,
		Media:          []string{"/images/tv-samsung-1.jpg", "/images/tv-samsung-2.jpg"},
		Type:           "tv",
		Dioganal:       []string{"43", "50", "55", "65"},
	},
	{
		ID:             2,
		Title:          "Телевизор Artel UA43H3502",
		Description:    "Full HD Android TV, встроенный Wi-Fi",
		Colors:         []string{"black"},
		Rating:         4.3,
		Price:          2899000,
		IsBlackFriday:  true,
		SalePercentage: 25,
		Media:          []string{"/images/tv-artel-1.jpg"},
		Type:           "tv",
		Dioganal:       []string{"43", "50"},
	},
	{
		ID:             3,
		Title:          "Смартфон Xiaomi Redmi Note 13",
		Description:    "8/256 ГБ, AMOLED 120 Гц, камера 108 Мп",
		Colors:         []string{"midnight black", "mint green", "ocean teal"},
		Rating:         4.8,
		Price:          3199000,
		SalePercentage: 10,
		Media:          []string{"/images/redmi-note-13-1.jpg", "/images/redmi-note-13-2.jpg"},
		Type:           "smartphone",
	},
	{
		ID:             4,
		Title:          "Смартфон Samsung Galaxy A55",
		Description:    "8/128 ГБ, Super AMOLED, IP67",
		Colors:         []string{"awesome navy", "awesome lilac"},
		Rating:         4.6,
		Price:          4599000,
		Media:          []string{"/images/galaxy-a55-1.jpg"},
		Type:           "smartphone",
	},
	{
		ID:             5,
		Title:          "Наушники Apple AirPods Pro 2",
		Description:    "Активное шумоподавление, USB-C",
		Colors:         []string{"white"},
		Rating:         4.9,
		Price:          3099000,
		SalePercentage: 5,
		Media:          []string{"/images/airpods-pro-2.jpg"},
		Type:           "accessories",
	},
	{
		ID:             6,
		Title:          "Пылесос Dyson V11 Absolute",
		Description:    "Беспроводной, до 60 минут работы",
		Colors:         []string{"nickel"},
		Rating:         4.5,
		Price:          7999000,
		IsBlackFriday:  true,
		SalePercentage: 30,
		Media:          []string{"/images/dyson-v11.jpg"},
		Type:           "appliances",
	},
	{
		ID:             7,
		Title:          "Ноутбук HONOR MagicBook X16",
		Description:    "i5-12450H, 16/512 ГБ, IPS 144 Гц",
		Colors:         []string{"space gray"},
		Rating:         4.4,
		Price:          6799000,
		Media:          []string{"/images/magicbook-x16.jpg"},
		Type:           "laptop",
	},
	{
		ID:             8,
		Title:          "Умная колонка Яндекс Станция Мини",
		Description:    "С часами, голосовой помощник Алиса",
		Colors:         []string{"black", "gray", "red"},
		Rating:         4.2,
		Price:          899000,
		SalePercentage: 20,
		Media:          []string{"/images/station-mini.jpg"},
		Type:           "accessories",
	},
}
