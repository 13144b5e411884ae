package usecase

import (
	"context"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/query"
	"github.com/jhoicas/drinktrace-web/internal/domain"
	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
	"github.com/jhoicas/drinktrace-web/pkg/logger"
)

// ProductUseCase flujos de producto: creación, historial, ventas y las
// lecturas cacheadas (listado, detalle y agregado público).
type ProductUseCase struct {
	api   RemoteAPI
	cache *query.Cache
	guard *InflightGuard
	log   *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api RemoteAPI, cache *query.Cache, guard *InflightGuard, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{api: api, cache: cache, guard: guard, log: log.Component("product_uc")}
}

// Create valida y crea un producto. El éxito invalida el listado de
// productos; el listado de marcas no se toca.
func (uc *ProductUseCase) Create(ctx context.Context, token string, in form.ProductInput, n Notifier) (*entity.Product, form.FieldErrors, error) {
	payload, fieldErrs := form.ValidateProduct(in)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !uc.guard.Acquire(token) {
		return nil, nil, domain.ErrSubmissionInFlight
	}
	defer uc.guard.Release(token)

	product, err := uc.api.CreateProduct(ctx, payload)
	if err != nil {
		uc.log.Error().Err(err).Str("product", payload.Name).Msg("crear producto")
		n.Failure("No se pudo crear el producto")
		return nil, nil, err
	}

	uc.cache.InvalidateEntity(query.EntityProducts)
	n.Success("Producto creado correctamente")
	uc.log.Info().Str("id", product.ID).Str("name", product.Name).Msg("producto creado")
	return product, nil, nil
}

// AddHistory anexa una entrada de historial al producto (solo anexado,
// nunca modifica entradas previas). El éxito invalida el agregado y el
// detalle de ese producto.
func (uc *ProductUseCase) AddHistory(ctx context.Context, token, productID string, in form.HistoryInput, n Notifier) (*entity.ProductHistory, form.FieldErrors, error) {
	in.ProductID = productID
	payload, fieldErrs := form.ValidateHistory(in)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !uc.guard.Acquire(token) {
		return nil, nil, domain.ErrSubmissionInFlight
	}
	defer uc.guard.Release(token)

	history, err := uc.api.AddProductHistory(ctx, productID, payload)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("agregar historial")
		n.Failure("No se pudo agregar el historial")
		return nil, nil, err
	}

	uc.cache.Invalidate(query.SaleKey(productID))
	uc.cache.Invalidate(query.ProductKey(productID))
	n.Success("Historial del producto agregado")
	return history, nil, nil
}

// RecordSale registra una venta/traspaso del producto hacia una tienda.
func (uc *ProductUseCase) RecordSale(ctx context.Context, token, productID string, in form.SaleInput, n Notifier) (*entity.ProductSale, form.FieldErrors, error) {
	payload, fieldErrs := form.ValidateSale(in)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !uc.guard.Acquire(token) {
		return nil, nil, domain.ErrSubmissionInFlight
	}
	defer uc.guard.Release(token)

	sale, err := uc.api.RecordProductSale(ctx, productID, payload)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("registrar venta")
		n.Failure("No se pudo registrar la venta")
		return nil, nil, err
	}

	uc.cache.Invalidate(query.SaleKey(productID))
	uc.cache.Invalidate(query.ProductKey(productID))
	n.Success("Venta del producto registrada")
	return sale, nil, nil
}

// List listado de productos, servido desde la caché.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return query.Read(ctx, uc.cache, query.ProductsKey(), uc.api.GetAllProducts)
}

// Get detalle simple de un producto, servido desde la caché.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrMissingParam
	}
	return query.Read(ctx, uc.cache, query.ProductKey(id), func(ctx context.Context) (*entity.Product, error) {
		return uc.api.GetProduct(ctx, id)
	})
}

// View agregado público (producto + marca + ventas + historial). Si falta
// el identificador la lectura jamás se emite.
func (uc *ProductUseCase) View(ctx context.Context, productID string) (*entity.ProductView, error) {
	if productID == "" {
		return nil, domain.ErrMissingParam
	}
	return query.Read(ctx, uc.cache, query.SaleKey(productID), func(ctx context.Context) (*entity.ProductView, error) {
		return uc.api.GetProductView(ctx, productID)
	})
}
