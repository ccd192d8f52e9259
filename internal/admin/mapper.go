package admin

import (
	"encoding/json"
	"strconv"

	"veluxe-store/internal/api"
)

func productForm(in ProductInput) (*api.Form, error) {
	features, err := json.Marshal(in.Features)
	if err != nil {
		return nil, err
	}
	howToUse, err := json.Marshal(in.HowToUse)
	if err != nil {
		return nil, err
	}

	f := api.NewForm().
		Set("name", in.Name).
		Set("categoryId", strconv.FormatInt(in.CategoryID, 10)).
		Set("sub_cate_id", strconv.FormatInt(in.SubcategoryID, 10)).
		Set("price", in.Price).
		Set("shortDescription", in.ShortDescription).
		Set("longDescription", in.LongDescription).
		Set("suitableSurfaces", in.SuitableSurfaces).
		Set("originalQty", strconv.Itoa(in.OriginalQty)).
		Set("features", string(features)).
		Set("howToUse", string(howToUse)).
		Set("volume", in.Volume).
		Set("ingredients", in.Ingredients).
		Set("scent", in.Scent).
		Set("phLevel", in.PHLevel).
		Set("shelfLife", in.ShelfLife).
		Set("madeIn", in.MadeIn).
		Set("packaging", in.Packaging).
		Set("combos", strconv.FormatBool(in.Combo))

	for _, img := range in.Images {
		f.File("images", img.Filename, img.Content)
	}
	return f, nil
}

func categoryForm(in CategoryInput) *api.Form {
	f := api.NewForm().Set("name", in.Name)
	if in.Image != nil {
		f.File("image", in.Image.Filename, in.Image.Content)
	}
	return f
}

func subcategoryForm(in SubcategoryInput) *api.Form {
	f := api.NewForm().
		Set("sub_cate_name", in.Name).
		Set("cate_id", strconv.FormatInt(in.CategoryID, 10))
	if in.Image != nil {
		f.File("image", in.Image.Filename, in.Image.Content)
	}
	return f
}

func promoBannerForm(in PromoBannerInput) *api.Form {
	f := api.NewForm().
		Set("title", in.Title).
		Set("description", in.Description).
		Set("buttonText", in.ButtonText)
	if in.Image != nil {
		f.File("image", in.Image.Filename, in.Image.Content)
	}
	return f
}

func mediaForm(in MediaInput) *api.Form {
	f := api.NewForm()
	if in.Image != nil {
		f.File("image", in.Image.Filename, in.Image.Content)
	}
	if in.Video != nil {
		f.File("video", in.Video.Filename, in.Video.Content)
	}
	if in.RemoveVideo {
		f.Set("removeVideo", "true")
	}
	return f
}
