package catalog

// Rating thresholds the UI offers; semantics are "rating >= stars".
// How multiple selected thresholds combine is the server's contract.
var allowedRatings = map[int]bool{3: true, 4: true, 5: true}

// FilterState is the user's current catalog narrowing criteria. Pure data;
// fetching is a separate explicit step so rapid edits stay off the network.
type FilterState struct {
	categories    map[int64]bool
	subcategories map[int64]bool
	ratings       map[int]bool
	priceMin      *int
	priceMax      *int

	// Search is forwarded inside the filter payload so the server matches
	// against the full corpus, not the loaded page.
	Search string
}

func NewFilterState() *FilterState {
	return &FilterState{
		categories:    make(map[int64]bool),
		subcategories: make(map[int64]bool),
		ratings:       make(map[int]bool),
	}
}

// ToggleCategory adds or removes a category id. Subcategories are scoped to
// the selected category, so any toggle drops the subcategory selection.
func (f *FilterState) ToggleCategory(id int64) {
	if f.categories[id] {
		delete(f.categories, id)
	} else {
		f.categories[id] = true
	}
	f.subcategories = make(map[int64]bool)
}

func (f *FilterState) ToggleSubcategory(id int64) {
	if f.subcategories[id] {
		delete(f.subcategories, id)
	} else {
		f.subcategories[id] = true
	}
}

// ToggleRating adds or removes a minimum-star threshold. Values outside
// {3,4,5} are ignored.
func (f *FilterState) ToggleRating(stars int) {
	if !allowedRatings[stars] {
		return
	}
	if f.ratings[stars] {
		delete(f.ratings, stars)
	} else {
		f.ratings[stars] = true
	}
}

type PriceBound int

const (
	PriceMin PriceBound = iota
	PriceMax
)

// SetPriceBound sets one side of the price range; nil means unbounded.
func (f *FilterState) SetPriceBound(which PriceBound, value *int) {
	if which == PriceMin {
		f.priceMin = value
	} else {
		f.priceMax = value
	}
}

// Clear resets every criterion to empty/unbounded.
func (f *FilterState) Clear() {
	f.categories = make(map[int64]bool)
	f.subcategories = make(map[int64]bool)
	f.ratings = make(map[int]bool)
	f.priceMin = nil
	f.priceMax = nil
	f.Search = ""
}

func (f *FilterState) HasCategory(id int64) bool    { return f.categories[id] }
func (f *FilterState) HasSubcategory(id int64) bool { return f.subcategories[id] }
func (f *FilterState) HasRating(stars int) bool     { return f.ratings[stars] }

func (f *FilterState) PriceBounds() (min, max *int) {
	return f.priceMin, f.priceMax
}
