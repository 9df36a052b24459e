package service

import (
	"context"

	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	AddProducts(ctx context.Context, data []dto.ProductRequest) (result dto.BulkInsertResponse, err error)
	GetProductByID(ctx context.Context, productID string) (product domain.Product, err error)
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
	CompareProducts(ctx context.Context, filter pkgdto.ProductFilter) (groups map[string][]domain.Product, err error)
	UpdateProduct(ctx context.Context, productID string, data dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, productID string) (err error)
}

type UserService interface {
	Register(ctx context.Context, data dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Login(ctx context.Context, data dto.LoginRequest) (resp dto.AuthResponse, err error)
	GetProfile(ctx context.Context, userID string) (resp dto.ProfileResponse, err error)
}
