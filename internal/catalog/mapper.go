package catalog

import (
	"sort"
	"strconv"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// filterPayload is the wire shape of the listing query filter.
type filterPayload struct {
	Category []int64      `json:"category"`
	Subcat   []int64      `json:"subcat"`
	Price    pricePayload `json:"price"`
	Rating   []int        `json:"rating"`
	Combos   bool         `json:"combos,omitempty"`
	Search   string       `json:"search,omitempty"`
}

type pricePayload struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type listRequest struct {
	Page    int           `json:"page"`
	PerPage int           `json:"perPage"`
	Filter  filterPayload `json:"filter"`
}

type listResponse struct {
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
}

// toPayload snapshots a FilterState into its wire form. Sets become sorted
// slices so identical states always serialize identically.
func toPayload(f *FilterState, combosOnly bool) filterPayload {
	p := filterPayload{
		Category: sortedKeys(f.categories),
		Subcat:   sortedKeys(f.subcategories),
		Price:    pricePayload{Min: f.priceMin, Max: f.priceMax},
		Rating:   sortedRatings(f.ratings),
		Combos:   combosOnly,
		Search:   f.Search,
	}
	return p
}

func sortedKeys(set map[int64]bool) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedRatings(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for stars := range set {
		out = append(out, stars)
	}
	sort.Ints(out)
	return out
}
