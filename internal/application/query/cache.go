package query

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Cache almacén de lecturas de proceso completo, compartido por todos los
// handlers que leen la misma clave. Los fallos de fetch no se cachean.
type Cache struct {
	store *expirable.LRU[string, any]
	group singleflight.Group
}

// NewCache construye la caché con tamaño máximo y TTL por entrada.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		store: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

// FetchFunc operación de lectura subyacente (una llamada al API remoto).
type FetchFunc func(ctx context.Context) (any, error)

// ReadThrough devuelve el valor cacheado bajo key o ejecuta fetch una sola
// vez aunque haya lecturas concurrentes (coalescencia vía singleflight).
func (c *Cache) ReadThrough(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	if v, ok := c.store.Get(string(key)); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(string(key), func() (any, error) {
		// Segunda mirada: otro vuelo pudo haber poblado la entrada
		// entre el Get de arriba y la entrada al grupo.
		if v, ok := c.store.Get(string(key)); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store.Add(string(key), v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate elimina una clave puntual.
func (c *Cache) Invalidate(key Key) {
	c.store.Remove(string(key))
}

// InvalidateEntity elimina toda clave cuya etiqueta de entidad coincida.
// Es el grafo de invalidación explícito: cada mutación confirmada invalida
// las etiquetas de las que dependen sus lecturas relacionadas.
func (c *Cache) InvalidateEntity(entities ...string) {
	for _, k := range c.store.Keys() {
		for _, e := range entities {
			if Key(k).Entity() == e {
				c.store.Remove(k)
				break
			}
		}
	}
}

// Len número de entradas vivas (para tests y diagnóstico).
func (c *Cache) Len() int { return c.store.Len() }

// Read variante tipada de ReadThrough. El valor cacheado bajo una clave
// siempre tiene el mismo tipo porque cada clave pertenece a una sola
// operación del adaptador.
func Read[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.ReadThrough(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
