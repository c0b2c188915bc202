package domain

// Ref is a name-bearing reference to a brand, category or product type
type Ref struct {
	Name string `json:"name"`
}

// Review is a single product review, owned by its snapshot
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ProductSnapshot is the immutable product record fetched once per
// detail session from the catalog service
type ProductSnapshot struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Brand       Ref      `json:"brand"`
	Category    Ref      `json:"category"`
	Type        Ref      `json:"type"`
	Reviews     []Review `json:"reviews"`
}

// FilterReviews returns the reviews matching the given star rating, or
// all reviews when rating is nil. The underlying slice is never mutated
// and order is preserved.
func (p *ProductSnapshot) FilterReviews(rating *int) []Review {
	if rating == nil {
		return p.Reviews
	}
	filtered := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		if r.Rating == *rating {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
