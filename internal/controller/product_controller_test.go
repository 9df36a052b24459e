package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	"github.com/shopscout/catalog-service/pkg/errs"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

// stubProductService returns canned results so handler translation of
// service errors into HTTP statuses can be asserted.
type stubProductService struct {
	product domain.Product
	bulk    dto.BulkInsertResponse
	list    []domain.Product
	groups  map[string][]domain.Product
	err     error
}

func (s *stubProductService) AddProduct(ctx context.Context, data dto.ProductRequest) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) AddProducts(ctx context.Context, data []dto.ProductRequest) (dto.BulkInsertResponse, error) {
	return s.bulk, s.err
}

func (s *stubProductService) GetProductByID(ctx context.Context, productID string) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) ([]domain.Product, error) {
	return s.list, s.err
}

func (s *stubProductService) CompareProducts(ctx context.Context, filter pkgdto.ProductFilter) (map[string][]domain.Product, error) {
	return s.groups, s.err
}

func (s *stubProductService) UpdateProduct(ctx context.Context, productID string, data dto.ProductUpdateRequest) (domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) DeleteProduct(ctx context.Context, productID string) error {
	return s.err
}

func setupProductServer(svc *stubProductService) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/v1")
	CreateProductController(g, svc)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAddProductStatusCodes(t *testing.T) {
	type TestCase struct {
		Name           string
		ServiceErr     error
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "Created", ServiceErr: nil, ExpectedStatus: http.StatusCreated},
		{Name: "Validation failure", ServiceErr: errs.ErrClient, ExpectedStatus: http.StatusBadRequest},
		{Name: "Duplicate", ServiceErr: errs.ErrProductAlreadyExists, ExpectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := &stubProductService{
				product: domain.Product{ProductID: "P1"},
				err:     tc.ServiceErr,
			}
			e := setupProductServer(svc)

			rec := doJSON(e, http.MethodPost, "/api/v1/products", `{"product_id":"P1"}`)
			assert.Equal(t, tc.ExpectedStatus, rec.Code)
		})
	}
}

func TestAddProductsStatusCodes(t *testing.T) {
	type TestCase struct {
		Name           string
		ServiceErr     error
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "Created", ServiceErr: nil, ExpectedStatus: http.StatusCreated},
		{Name: "Empty payload", ServiceErr: errs.ErrClient, ExpectedStatus: http.StatusBadRequest},
		{Name: "All duplicates", ServiceErr: errs.ErrAllProductsExist, ExpectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := &stubProductService{
				bulk: dto.BulkInsertResponse{InsertedCount: 2, SkippedProductIDs: []string{"P1"}},
				err:  tc.ServiceErr,
			}
			e := setupProductServer(svc)

			rec := doJSON(e, http.MethodPost, "/api/v1/products/bulk-create", `[{"product_id":"P1"}]`)
			assert.Equal(t, tc.ExpectedStatus, rec.Code)
		})
	}
}

func TestAddProductsReportsCountAndSkipped(t *testing.T) {
	svc := &stubProductService{
		bulk: dto.BulkInsertResponse{InsertedCount: 2, SkippedProductIDs: []string{"P1"}},
	}
	e := setupProductServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/v1/products/bulk-create", `[{"product_id":"P1"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Status string                 `json:"status"`
		Data   dto.BulkInsertResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 2, body.Data.InsertedCount)
	assert.Equal(t, []string{"P1"}, body.Data.SkippedProductIDs)
}

func TestGetProductNotFound(t *testing.T) {
	svc := &stubProductService{err: errs.ErrProductNotFound}
	e := setupProductServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/v1/products/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductsList(t *testing.T) {
	svc := &stubProductService{
		list: []domain.Product{{ProductID: "P1"}, {ProductID: "P2"}},
	}
	e := setupProductServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/v1/products?search=widget&min_rating=4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestGetProductsCompareMode(t *testing.T) {
	svc := &stubProductService{
		groups: map[string][]domain.Product{
			"Widget": {{ProductID: "P1"}, {ProductID: "P2"}},
		},
	}
	e := setupProductServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/v1/products?compare=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string][]domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data["Widget"], 2)
	assert.Equal(t, "P1", body.Data["Widget"][0].ProductID)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := &stubProductService{err: errs.ErrProductNotFound}
	e := setupProductServer(svc)

	rec := doJSON(e, http.MethodPut, "/api/v1/products/missing", `{"price":50}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	e := setupProductServer(&stubProductService{})

	rec := doJSON(e, http.MethodDelete, "/api/v1/products/P1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	e = setupProductServer(&stubProductService{err: errs.ErrProductNotFound})

	rec = doJSON(e, http.MethodDelete, "/api/v1/products/P1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
