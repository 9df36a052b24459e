package repository

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	"github.com/shopscout/catalog-service/pkg/errs"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) MongoDBProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

// EnsureIndexes declares the unique constraint on product_id. The check
// before insert is not atomic, so the constraint is what actually prevents
// duplicates under concurrent creates.
func (r *MongoDBProductRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(productCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EnsureIndexes").Msg("")
	}

	return err
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (domain.Product, error) {
	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return data, errs.ErrProductAlreadyExists
		}

		return data, err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) AddProducts(ctx context.Context, data []domain.Product) (count int, err error) {
	docs := make([]interface{}, 0, len(data))
	for _, product := range data {
		docs = append(docs, product)
	}

	result, err := r.db.Collection(productCollection).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProducts").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return 0, errs.ErrProductAlreadyExists
		}

		return 0, err
	}

	return len(result.InsertedIDs), nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByProductID(ctx context.Context, productID string) (product domain.Product, err error) {
	filter := bson.D{{Key: "product_id", Value: productID}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByProductID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetExistingProductIDs(ctx context.Context, productIDs []string) (map[string]struct{}, error) {
	filter := bson.M{"product_id": bson.M{"$in": productIDs}}
	opts := options.Find().SetProjection(bson.M{"product_id": 1})

	cursor, err := r.db.Collection(productCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetExistingProductIDs").Msg("")
		return nil, err
	}

	var docs []struct {
		ProductID string `bson:"product_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetExistingProductIDs").Msg("")
		return nil, err
	}

	existing := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		existing[doc.ProductID] = struct{}{}
	}

	return existing, nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.ProductFilter) (data []domain.Product, err error) {
	var opts *options.FindOptions
	if param.HasFilter() {
		opts = options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	}

	cursor, err := r.db.Collection(productCollection).Find(ctx, buildProductFilter(param), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

// buildProductFilter shapes the Mongo query: free-text search ORs a
// case-insensitive regex across product_name, category and brand; a location
// filter also admits nationwide offers.
func buildProductFilter(param pkgdto.ProductFilter) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(param.Search); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"product_name": regex},
			bson.M{"category": regex},
			bson.M{"brand": regex},
		}
	}

	if param.MinRating > 0 {
		filter["average_rating"] = bson.M{"$gte": param.MinRating}
	}

	if param.Location != "" {
		filter["store.location"] = bson.M{"$in": bson.A{param.Location, domain.NationwideLocation}}
	}

	return filter
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, productID string, data dto.ProductUpdateRequest) (product domain.Product, err error) {
	set := buildUpdateDocument(data)
	set["updated_at"] = time.Now().UTC()

	filter := bson.D{{Key: "product_id", Value: productID}}
	update := bson.M{"$set": set}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(productCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return product, err
	}

	return product, nil
}

// buildUpdateDocument translates a partial update into a $set document.
// Only supplied fields appear; everything else keeps its stored value.
func buildUpdateDocument(data dto.ProductUpdateRequest) bson.M {
	set := bson.M{}

	if data.ProductName != nil {
		set["product_name"] = *data.ProductName
	}
	if data.Category != nil {
		set["category"] = *data.Category
	}
	if data.Brand != nil {
		set["brand"] = *data.Brand
	}
	if data.Price != nil {
		set["price"] = *data.Price
	}
	if data.Availability != nil {
		set["availability"] = bool(*data.Availability)
	}
	if data.AverageRating != nil {
		set["average_rating"] = float64(*data.AverageRating)
	}
	if data.NumberOfReviews != nil {
		set["number_of_reviews"] = int64(*data.NumberOfReviews)
	}
	if data.URL != nil {
		set["url"] = *data.URL
	}
	if data.ImageURL != nil {
		set["image_url"] = *data.ImageURL
	}
	if data.Store != nil {
		set["store"] = domain.Store{
			Name:       data.Store.Name,
			WebsiteURL: data.Store.WebsiteURL,
			Location:   data.Store.Location,
		}
	}

	return set
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, productID string) error {
	filter := bson.D{{Key: "product_id", Value: productID}}

	result, err := r.db.Collection(productCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return err
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}
