package models

// Product товар из каталога магазина
type Product struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
}

// CartState содержимое корзины. Не зависит от сессии и хранится всегда.
type CartState struct {
	Items []Product `json:"items"`
}

// Total возвращает сумму цен товаров в корзине
func (c CartState) Total() float64 {
	var total float64
	for _, p := range c.Items {
		total += p.Price
	}
	return total
}
