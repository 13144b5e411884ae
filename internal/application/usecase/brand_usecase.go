package usecase

import (
	"context"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/query"
	"github.com/jhoicas/drinktrace-web/internal/domain"
	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
	"github.com/jhoicas/drinktrace-web/pkg/logger"
)

// BrandUseCase flujos de marca: creación y listado cacheado.
type BrandUseCase struct {
	api   RemoteAPI
	cache *query.Cache
	guard *InflightGuard
	log   *logger.Logger
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(api RemoteAPI, cache *query.Cache, guard *InflightGuard, log *logger.Logger) *BrandUseCase {
	return &BrandUseCase{api: api, cache: cache, guard: guard, log: log.Component("brand_uc")}
}

// Create valida el formulario y envía la creación. token identifica la
// instancia del formulario (a lo sumo un envío en curso por token).
// Devuelve errores de campo si la validación falla (sin tocar el API),
// o el error del envío si el API rechaza; en ese caso el handler conserva
// los valores ingresados para el reintento manual.
func (uc *BrandUseCase) Create(ctx context.Context, token string, in form.BrandInput, n Notifier) (*entity.Brand, form.FieldErrors, error) {
	payload, fieldErrs := form.ValidateBrand(in)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !uc.guard.Acquire(token) {
		return nil, nil, domain.ErrSubmissionInFlight
	}
	defer uc.guard.Release(token)

	brand, err := uc.api.CreateBrand(ctx, payload)
	if err != nil {
		uc.log.Error().Err(err).Str("brand", payload.Name).Msg("crear marca")
		n.Failure("No se pudo crear la marca")
		return nil, nil, err
	}

	uc.cache.InvalidateEntity(query.EntityBrands)
	n.Success("Marca creada correctamente")
	uc.log.Info().Str("id", brand.ID).Str("name", brand.Name).Msg("marca creada")
	return brand, nil, nil
}

// List listado de marcas para poblar selects, servido desde la caché.
func (uc *BrandUseCase) List(ctx context.Context) ([]entity.BrandSummary, error) {
	return query.Read(ctx, uc.cache, query.BrandsKey(), uc.api.GetAllBrands)
}
