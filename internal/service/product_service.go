package service

import (
	"context"
	"time"

	"github.com/shopscout/catalog-service/config"
	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	"github.com/shopscout/catalog-service/internal/repository"
	"github.com/shopscout/catalog-service/pkg/errs"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

const defaultBrand = "Unknown"

type ProductServiceImpl struct {
	mongoDBRepo repository.MongoDBProductRepository
	config      config.Config
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository, config config.Config) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config}
}

// buildProduct validates a candidate record and normalizes optional fields
// to their defaults.
func (s *ProductServiceImpl) buildProduct(data dto.ProductRequest) (domain.Product, error) {
	var product domain.Product

	if data.ProductID == "" || data.ProductName == "" || data.Category == "" || data.URL == "" ||
		data.Price == nil || data.Store == nil {
		return product, errs.ErrClient
	}

	if data.Store.Name == "" || data.Store.WebsiteURL == "" || data.Store.Location == "" {
		return product, errs.ErrClient
	}

	if *data.Price < 0 {
		return product, errs.ErrClient
	}

	rating := float64(data.AverageRating)
	if rating < 0 || rating > 5 {
		return product, errs.ErrClient
	}

	reviews := int64(data.NumberOfReviews)
	if reviews < 0 {
		return product, errs.ErrClient
	}

	brand := data.Brand
	if brand == "" {
		brand = defaultBrand
	}

	availability := true
	if data.Availability != nil {
		availability = bool(*data.Availability)
	}

	now := time.Now().UTC()

	return domain.Product{
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Category:        data.Category,
		Brand:           brand,
		Price:           *data.Price,
		Availability:    availability,
		AverageRating:   rating,
		NumberOfReviews: reviews,
		URL:             data.URL,
		ImageURL:        data.ImageURL,
		Store: domain.Store{
			Name:       data.Store.Name,
			WebsiteURL: data.Store.WebsiteURL,
			Location:   data.Store.Location,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (domain.Product, error) {
	product, err := s.buildProduct(data)
	if err != nil {
		return product, err
	}

	_, err = s.mongoDBRepo.GetProductByProductID(ctx, data.ProductID)
	if err == nil {
		return domain.Product{}, errs.ErrProductAlreadyExists
	}
	if err != errs.ErrProductNotFound {
		return domain.Product{}, err
	}

	return s.mongoDBRepo.AddProduct(ctx, product)
}

func (s *ProductServiceImpl) AddProducts(ctx context.Context, data []dto.ProductRequest) (result dto.BulkInsertResponse, err error) {
	if len(data) == 0 {
		return result, errs.ErrClient
	}

	products := make([]domain.Product, 0, len(data))
	productIDs := make([]string, 0, len(data))
	for _, candidate := range data {
		product, err := s.buildProduct(candidate)
		if err != nil {
			return result, err
		}

		products = append(products, product)
		productIDs = append(productIDs, product.ProductID)
	}

	existing, err := s.mongoDBRepo.GetExistingProductIDs(ctx, productIDs)
	if err != nil {
		return result, err
	}

	fresh := make([]domain.Product, 0, len(products))
	skipped := []string{}
	seen := make(map[string]struct{}, len(products))
	for _, product := range products {
		if _, ok := existing[product.ProductID]; ok {
			skipped = append(skipped, product.ProductID)
			continue
		}
		if _, ok := seen[product.ProductID]; ok {
			skipped = append(skipped, product.ProductID)
			continue
		}

		seen[product.ProductID] = struct{}{}
		fresh = append(fresh, product)
	}

	if len(fresh) == 0 {
		return result, errs.ErrAllProductsExist
	}

	count, err := s.mongoDBRepo.AddProducts(ctx, fresh)
	if err != nil {
		return result, err
	}

	result.InsertedCount = count
	result.SkippedProductIDs = skipped

	return result, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, productID string) (domain.Product, error) {
	return s.mongoDBRepo.GetProductByProductID(ctx, productID)
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) ([]domain.Product, error) {
	return s.mongoDBRepo.GetProducts(ctx, filter)
}

// CompareProducts groups the filtered listing by exact product name. The
// store returns rows in ascending price order, so each group keeps that
// order for price-comparison display.
func (s *ProductServiceImpl) CompareProducts(ctx context.Context, filter pkgdto.ProductFilter) (map[string][]domain.Product, error) {
	products, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]domain.Product, len(products))
	for _, product := range products {
		groups[product.ProductName] = append(groups[product.ProductName], product)
	}

	return groups, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, productID string, data dto.ProductUpdateRequest) (domain.Product, error) {
	if data.Price != nil && *data.Price < 0 {
		return domain.Product{}, errs.ErrClient
	}

	if data.AverageRating != nil {
		rating := float64(*data.AverageRating)
		if rating < 0 || rating > 5 {
			return domain.Product{}, errs.ErrClient
		}
	}

	if data.NumberOfReviews != nil && int64(*data.NumberOfReviews) < 0 {
		return domain.Product{}, errs.ErrClient
	}

	return s.mongoDBRepo.UpdateProduct(ctx, productID, data)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	return s.mongoDBRepo.DeleteProduct(ctx, productID)
}
