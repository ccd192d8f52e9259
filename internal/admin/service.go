package admin

import (
	"context"
	"strconv"

	"veluxe-store/internal/api"
	"veluxe-store/internal/catalog"
	"veluxe-store/internal/logger"
	"veluxe-store/internal/session"

	"go.uber.org/zap"
)

type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostForm(ctx context.Context, path string, form *api.Form, out any) error
	PutForm(ctx context.Context, path string, form *api.Form, out any) error
}

// Service is the back-office surface: catalog CRUD plus the homepage
// content blocks (promo banners, insta sections, media, videos). Every
// call requires an admin session.
type Service interface {
	Stats(ctx context.Context) (*DashboardStats, error)

	Products(ctx context.Context) ([]catalog.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) error
	UpdateProduct(ctx context.Context, id int64, in ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, in CategoryInput) error
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateSubcategory(ctx context.Context, in SubcategoryInput) error
	UpdateSubcategory(ctx context.Context, id int64, in SubcategoryInput) error
	DeleteSubcategory(ctx context.Context, id int64) error

	Banners(ctx context.Context) ([]Banner, error)
	UpsertBanner(ctx context.Context, id int64, image Upload) error
	DeleteBanner(ctx context.Context, id int64) error

	PromoBanners(ctx context.Context) ([]PromoBanner, error)
	CreatePromoBanner(ctx context.Context, in PromoBannerInput) error
	UpdatePromoBanner(ctx context.Context, id int64, in PromoBannerInput) error
	DeletePromoBanner(ctx context.Context, id int64) error

	InstaSections(ctx context.Context) ([]InstaSection, error)
	UpsertInstaSection(ctx context.Context, id int64, image Upload) error
	DeleteInstaSection(ctx context.Context, id int64) error

	MediaItems(ctx context.Context) ([]Media, error)
	CreateMedia(ctx context.Context, in MediaInput) error
	UpdateMedia(ctx context.Context, id int64, in MediaInput) error
	DeleteMedia(ctx context.Context, id int64) error

	Videos(ctx context.Context) ([]Video, error)
	CreateVideo(ctx context.Context, video Upload) error
	UpdateVideo(ctx context.Context, id int64, video Upload) error
	DeleteVideo(ctx context.Context, id int64) error
}

type service struct {
	client apiClient
	sess   *session.Session
}

func NewService(client apiClient, sess *session.Session) Service {
	return &service{client: client, sess: sess}
}

func (s *service) guard() error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}
	if !s.sess.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (*DashboardStats, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var stats DashboardStats
	if err := s.client.Get(ctx, "/api/products/dashboardcounter", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *service) Products(ctx context.Context) ([]catalog.Product, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := s.client.Get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, in ProductInput) error {
	if err := s.guard(); err != nil {
		return err
	}
	form, err := productForm(in)
	if err != nil {
		return err
	}
	if err := s.client.PostForm(ctx, "/api/products", form, nil); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("product created", zap.String("name", in.Name))
	return nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	if err := s.guard(); err != nil {
		return err
	}
	form, err := productForm(in)
	if err != nil {
		return err
	}
	return s.client.PutForm(ctx, "/api/products/"+formatID(id), form, nil)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/products/"+formatID(id))
}

func (s *service) CreateCategory(ctx context.Context, in CategoryInput) error {
	return s.postForm(ctx, "/api/category", categoryForm(in))
}

func (s *service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) error {
	return s.putForm(ctx, "/api/category/"+formatID(id), categoryForm(in))
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/category/"+formatID(id))
}

// Subcategory routes keep the API's verb-style paths.
func (s *service) CreateSubcategory(ctx context.Context, in SubcategoryInput) error {
	return s.postForm(ctx, "/api/subcategory/add", subcategoryForm(in))
}

func (s *service) UpdateSubcategory(ctx context.Context, id int64, in SubcategoryInput) error {
	return s.putForm(ctx, "/api/subcategory/update/"+formatID(id), subcategoryForm(in))
}

func (s *service) DeleteSubcategory(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/subcategory/delete/"+formatID(id))
}

func (s *service) Banners(ctx context.Context) ([]Banner, error) {
	return list[Banner](ctx, s, "/api/banners")
}

// UpsertBanner creates the hero banner when id is zero and replaces its
// image otherwise.
func (s *service) UpsertBanner(ctx context.Context, id int64, image Upload) error {
	form := api.NewForm().File("image", image.Filename, image.Content)
	if id == 0 {
		return s.postForm(ctx, "/api/banners", form)
	}
	return s.putForm(ctx, "/api/banners/"+formatID(id), form)
}

func (s *service) DeleteBanner(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/banners/"+formatID(id))
}

func (s *service) PromoBanners(ctx context.Context) ([]PromoBanner, error) {
	return list[PromoBanner](ctx, s, "/api/promo-banners")
}

func (s *service) CreatePromoBanner(ctx context.Context, in PromoBannerInput) error {
	return s.postForm(ctx, "/api/promo-banners", promoBannerForm(in))
}

func (s *service) UpdatePromoBanner(ctx context.Context, id int64, in PromoBannerInput) error {
	return s.putForm(ctx, "/api/promo-banners/"+formatID(id), promoBannerForm(in))
}

func (s *service) DeletePromoBanner(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/promo-banners/"+formatID(id))
}

func (s *service) InstaSections(ctx context.Context) ([]InstaSection, error) {
	return list[InstaSection](ctx, s, "/api/instasection")
}

// UpsertInstaSection creates the section when id is zero and replaces its
// image otherwise.
func (s *service) UpsertInstaSection(ctx context.Context, id int64, image Upload) error {
	form := api.NewForm().File("image", image.Filename, image.Content)
	if id == 0 {
		return s.postForm(ctx, "/api/instasection", form)
	}
	return s.putForm(ctx, "/api/instasection/"+formatID(id), form)
}

func (s *service) DeleteInstaSection(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/instasection/"+formatID(id))
}

func (s *service) MediaItems(ctx context.Context) ([]Media, error) {
	return list[Media](ctx, s, "/api/media")
}

func (s *service) CreateMedia(ctx context.Context, in MediaInput) error {
	return s.postForm(ctx, "/api/media", mediaForm(in))
}

func (s *service) UpdateMedia(ctx context.Context, id int64, in MediaInput) error {
	return s.putForm(ctx, "/api/media/"+formatID(id), mediaForm(in))
}

func (s *service) DeleteMedia(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/media/"+formatID(id))
}

func (s *service) Videos(ctx context.Context) ([]Video, error) {
	return list[Video](ctx, s, "/api/video")
}

func (s *service) CreateVideo(ctx context.Context, video Upload) error {
	form := api.NewForm().File("video", video.Filename, video.Content)
	return s.postForm(ctx, "/api/video", form)
}

func (s *service) UpdateVideo(ctx context.Context, id int64, video Upload) error {
	form := api.NewForm().File("video", video.Filename, video.Content)
	return s.putForm(ctx, "/api/video/"+formatID(id), form)
}

func (s *service) DeleteVideo(ctx context.Context, id int64) error {
	return s.delete(ctx, "/api/video/"+formatID(id))
}

func list[T any](ctx context.Context, s *service, path string) ([]T, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var items []T
	if err := s.client.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *service) postForm(ctx context.Context, path string, form *api.Form) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.PostForm(ctx, path, form, nil)
}

func (s *service) putForm(ctx context.Context, path string, form *api.Form) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.PutForm(ctx, path, form, nil)
}

func (s *service) delete(ctx context.Context, path string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.client.Delete(ctx, path, nil)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
