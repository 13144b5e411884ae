package drinkapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
)

// CreateBrand POST /brands.
func (c *Client) CreateBrand(ctx context.Context, in dto.CreateBrandDTO) (*entity.Brand, error) {
	var out entity.Brand
	if err := c.do(ctx, http.MethodPost, "/brands", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllBrands GET /brands.
func (c *Client) GetAllBrands(ctx context.Context) ([]entity.BrandSummary, error) {
	var out []entity.BrandSummary
	if err := c.do(ctx, http.MethodGet, "/brands", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct POST /products.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllProducts GET /products.
func (c *Client) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddProductHistory POST /products/{id}/history.
func (c *Client) AddProductHistory(ctx context.Context, productID string, in dto.CreateProductHistoryDTO) (*entity.ProductHistory, error) {
	var out entity.ProductHistory
	if err := c.do(ctx, http.MethodPost, "/products/"+url.PathEscape(productID)+"/history", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordProductSale POST /products/{id}/sales.
func (c *Client) RecordProductSale(ctx context.Context, productID string, in dto.CreateProductSaleDTO) (*entity.ProductSale, error) {
	var out entity.ProductSale
	if err := c.do(ctx, http.MethodPost, "/products/"+url.PathEscape(productID)+"/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProductView GET /products/sale/{saleId} — agregado para la página
// pública de detalle.
func (c *Client) GetProductView(ctx context.Context, saleID string) (*entity.ProductView, error) {
	var out entity.ProductView
	if err := c.do(ctx, http.MethodGet, "/products/sale/"+url.PathEscape(saleID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStore POST /stores.
func (c *Client) CreateStore(ctx context.Context, in dto.CreateStoreDTO) (*entity.Store, error) {
	var out entity.Store
	if err := c.do(ctx, http.MethodPost, "/stores", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllStores GET /stores.
func (c *Client) GetAllStores(ctx context.Context) ([]entity.Store, error) {
	var out []entity.Store
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
