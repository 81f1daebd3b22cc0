package catalog

// Product is a purchasable item. The catalog is fixed at startup and
// never mutated, so products are shared without locking.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type Catalog struct {
	products []Product
	byID     map[int]Product
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Default is the demo catalog the service ships with.
func Default() *Catalog {
	return New([]Product{
		{
			ID:          1,
			Name:        "Dell XPS 13 Laptop",
			Price:       4999.99,
			Image:       "https://via.placeholder.com/300x200?text=Laptop+Dell+XPS+13",
			Description: "Premium ultrabook with an Intel Core i7 processor",
		},
		{
			ID:          2,
			Name:        "Samsung Galaxy S24",
			Price:       3499.99,
			Image:       "https://via.placeholder.com/300x200?text=Samsung+Galaxy+S24",
			Description: "Latest flagship smartphone with a 200MP camera",
		},
		{
			ID:          3,
			Name:        "Sony WH-1000XM5 Headphones",
			Price:       1299.99,
			Image:       "https://via.placeholder.com/300x200?text=Sony+WH-1000XM5",
			Description: "Wireless noise-cancelling headphones",
		},
		{
			ID:          4,
			Name:        "iPad Pro 12.9\" Tablet",
			Price:       5999.99,
			Image:       "https://via.placeholder.com/300x200?text=iPad+Pro+12.9",
			Description: "Professional tablet with a Liquid Retina XDR display",
		},
		{
			ID:          5,
			Name:        "Canon EOS R5 Camera",
			Price:       8999.99,
			Image:       "https://via.placeholder.com/300x200?text=Canon+EOS+R5",
			Description: "Professional 45MP mirrorless camera",
		},
		{
			ID:          6,
			Name:        "Apple Watch Ultra",
			Price:       3499.99,
			Image:       "https://via.placeholder.com/300x200?text=Apple+Watch+Ultra",
			Description: "Advanced smartwatch for active users",
		},
	})
}

// List returns the catalog in its fixed order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
