// Package usecase orquesta los flujos "enviar formulario → llamar API →
// notificar" de cada entidad (controlador de mutaciones) y las lecturas
// compuestas sobre la caché de consultas. Un envío por instancia de
// formulario como máximo; el éxito invalida las lecturas relacionadas.
package usecase

import (
	"context"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
)

// RemoteAPI puerto de salida hacia el API remoto de productos. La
// implementación concreta vive en infrastructure/drinkapi; para tests se
// inyecta un stub.
type RemoteAPI interface {
	CreateBrand(ctx context.Context, in dto.CreateBrandDTO) (*entity.Brand, error)
	GetAllBrands(ctx context.Context) ([]entity.BrandSummary, error)
	CreateProduct(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error)
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	AddProductHistory(ctx context.Context, productID string, in dto.CreateProductHistoryDTO) (*entity.ProductHistory, error)
	RecordProductSale(ctx context.Context, productID string, in dto.CreateProductSaleDTO) (*entity.ProductSale, error)
	GetProductView(ctx context.Context, saleID string) (*entity.ProductView, error)
	CreateStore(ctx context.Context, in dto.CreateStoreDTO) (*entity.Store, error)
	GetAllStores(ctx context.Context) ([]entity.Store, error)
}

// Notifier sumidero de notificaciones al usuario (el equivalente del toast).
// Es fire-and-forget: el controlador no depende de su resultado.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// NopNotifier descarta toda notificación; útil en tests y tareas internas.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(string) {}
