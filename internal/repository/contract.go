package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

type MongoDBProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (domain.Product, error)
	AddProducts(ctx context.Context, data []domain.Product) (count int, err error)
	GetProductByProductID(ctx context.Context, productID string) (product domain.Product, err error)
	GetExistingProductIDs(ctx context.Context, productIDs []string) (existing map[string]struct{}, err error)
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, productID string, data dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, productID string) (err error)
	EnsureIndexes(ctx context.Context) (err error)
}

type MongoDBUserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	EnsureIndexes(ctx context.Context) (err error)
}
