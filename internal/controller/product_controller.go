package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/shopscout/catalog-service/internal/dto"
	"github.com/shopscout/catalog-service/internal/service"
	"github.com/shopscout/catalog-service/pkg/response"
	pkgdto "github.com/shopscout/catalog-service/pkg/dto"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.POST("/products", c.AddProduct)
	e.POST("/products/bulk-create", c.AddProducts)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully", product)
}

func (c *ProductController) AddProducts(e echo.Context) error {
	payload := []dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProducts").Msg("")
	}

	result, err := c.service.AddProducts(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Products created successfully", result)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	if filter.Compare {
		groups, err := c.service.CompareProducts(e.Request().Context(), filter)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}

		return response.WriteSuccessResponse(e, "", groups)
	}

	products, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", products)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ProductUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}
