package catalog

// Product is the read-only catalog entry the listing endpoints return.
// Created and updated by the admin CRUD; this side only renders it.
type Product struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	CategoryID       int64    `json:"categoryId"`
	SubcategoryID    int64    `json:"sub_cate_id"`
	Images           []string `json:"images"`
	Combo            bool     `json:"combos"`
	RemainingQty     int      `json:"remainingQty"`
	OriginalQty      int      `json:"originalQty"`
	AverageRating    float64  `json:"averageRatings"`
	TotalReviews     int      `json:"totalReviews"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Features         []string `json:"features"`
	HowToUse         []string `json:"howToUse"`
	SuitableSurfaces string   `json:"suitableSurfaces"`
	Ingredients      string   `json:"ingredients"`
	Volume           string   `json:"volume"`
}

type Category struct {
	ID    int64  `json:"cate_id"`
	Name  string `json:"cate_name"`
	Image string `json:"cate_image"`
}

// Subcategory belongs to exactly one parent category.
type Subcategory struct {
	ID         int64  `json:"sub_cate_id"`
	CategoryID int64  `json:"cate_id"`
	Name       string `json:"sub_cate_name"`
}

// Page is the 1-based pagination bookkeeping for a listing screen.
type Page struct {
	Current int
	Size    int
	Total   int
}

// TotalPages derives the page count; 0 means no results.
func (p Page) TotalPages() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

// PageResult is one fetched slice of the catalog.
type PageResult struct {
	Items []Product
	Page  Page
}
