package usecase

import (
	"context"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/query"
	"github.com/jhoicas/drinktrace-web/internal/domain"
	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
	"github.com/jhoicas/drinktrace-web/pkg/logger"
)

// StoreUseCase flujos de tienda: creación y listado cacheado.
type StoreUseCase struct {
	api   RemoteAPI
	cache *query.Cache
	guard *InflightGuard
	log   *logger.Logger
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(api RemoteAPI, cache *query.Cache, guard *InflightGuard, log *logger.Logger) *StoreUseCase {
	return &StoreUseCase{api: api, cache: cache, guard: guard, log: log.Component("store_uc")}
}

// Create valida el formulario y crea la tienda.
func (uc *StoreUseCase) Create(ctx context.Context, token string, in form.StoreInput, n Notifier) (*entity.Store, form.FieldErrors, error) {
	payload, fieldErrs := form.ValidateStore(in)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if !uc.guard.Acquire(token) {
		return nil, nil, domain.ErrSubmissionInFlight
	}
	defer uc.guard.Release(token)

	store, err := uc.api.CreateStore(ctx, payload)
	if err != nil {
		uc.log.Error().Err(err).Str("store", payload.Name).Msg("crear tienda")
		n.Failure("No se pudo crear la tienda")
		return nil, nil, err
	}

	uc.cache.InvalidateEntity(query.EntityStores)
	n.Success("Tienda creada correctamente")
	uc.log.Info().Str("id", store.ID).Str("name", store.Name).Msg("tienda creada")
	return store, nil, nil
}

// List listado de tiendas para poblar los selects de venta.
func (uc *StoreUseCase) List(ctx context.Context) ([]entity.Store, error) {
	return query.Read(ctx, uc.cache, query.StoresKey(), uc.api.GetAllStores)
}
