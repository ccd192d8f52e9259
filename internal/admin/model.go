package admin

import "io"

// Upload is a file part for a multipart create or update.
type Upload struct {
	Filename string
	Content  io.Reader
}

// ProductInput carries every field the product form submits. Array fields
// travel as single JSON-encoded parts; images as one file part each.
type ProductInput struct {
	Name             string
	CategoryID       int64
	SubcategoryID    int64
	Price            string
	ShortDescription string
	LongDescription  string
	SuitableSurfaces string
	OriginalQty      int
	Features         []string
	HowToUse         []string
	Volume           string
	Ingredients      string
	Scent            string
	PHLevel          string
	ShelfLife        string
	MadeIn           string
	Packaging        string
	Combo            bool
	Images           []Upload
}

type CategoryInput struct {
	Name  string
	Image *Upload
}

type SubcategoryInput struct {
	Name       string
	CategoryID int64
	Image      *Upload
}

type PromoBannerInput struct {
	Title       string
	Description string
	ButtonText  string
	Image       *Upload
}

// Banner is the hero image rotation on the storefront landing page.
type Banner struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
}

type PromoBanner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	Image       string `json:"image"`
}

type InstaSection struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// MediaInput updates the homepage media block. RemoveVideo drops the
// stored video without replacing it.
type MediaInput struct {
	Image       *Upload
	Video       *Upload
	RemoveVideo bool
}

type Media struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
	Video string `json:"video"`
}

type Video struct {
	ID    int64  `json:"id"`
	Video string `json:"video"`
}

// DashboardStats is the admin home counter row.
type DashboardStats struct {
	Products   int `json:"products"`
	Orders     int `json:"orders"`
	Categories int `json:"category"`
	Subcats    int `json:"subcat"`
	Users      int `json:"users"`
	Contacts   int `json:"contact"`
	Reviews    int `json:"reviews"`
}
