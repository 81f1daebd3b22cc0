package cart

import "MiniShop/internal/catalog"

type ItemView struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Image    string  `json:"image"`
}

type View struct {
	Items []ItemView `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// BuildView joins cart lines against the catalog at read time. Lines
// whose product no longer resolves are skipped from items and total,
// but their stored quantities still count toward Count.
func BuildView(lines []Line, cat *catalog.Catalog) View {
	v := View{Items: make([]ItemView, 0, len(lines))}

	for _, l := range lines {
		v.Count += l.Quantity

		p, ok := cat.Get(l.ProductID)
		if !ok {
			continue
		}

		lineTotal := p.Price * float64(l.Quantity)
		v.Items = append(v.Items, ItemView{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: l.Quantity,
			Total:    lineTotal,
			Image:    p.Image,
		})
		v.Total += lineTotal
	}

	return v
}
