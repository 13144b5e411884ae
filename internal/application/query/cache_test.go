package query_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drinktrace-web/internal/application/query"
)

func newTestCache() *query.Cache {
	return query.NewCache(128, time.Minute)
}

func TestKey_Entity(t *testing.T) {
	assert.Equal(t, "products", query.ProductsKey().Entity())
	assert.Equal(t, "sale", query.SaleKey("abc").Entity())
	assert.Equal(t, "product", query.ProductKey("abc").Entity())
}

func TestReadThrough_SegundaLecturaSaleDeCache(t *testing.T) {
	c := newTestCache()
	var calls int32
	fetch := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	v1, err := query.Read(context.Background(), c, query.ProductsKey(), fetch)
	require.NoError(t, err)
	v2, err := query.Read(context.Background(), c, query.ProductsKey(), fetch)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "la segunda lectura no debe ir al origen")
}

func TestReadThrough_LecturasConcurrentesCoalescen(t *testing.T) {
	c := newTestCache()
	var calls int32
	gate := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-gate
		return "valor", nil
	}

	const readers = 10
	var wg sync.WaitGroup
	results := make([]string, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := query.Read(context.Background(), c, query.SaleKey("s1"), fetch)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	// Da tiempo a que todos los lectores entren al vuelo compartido.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "n lecturas concurrentes comparten un solo fetch")
	for _, r := range results {
		assert.Equal(t, "valor", r)
	}
}

func TestReadThrough_ErrorNoSeCachea(t *testing.T) {
	c := newTestCache()
	var calls int32
	boom := errors.New("upstream caído")
	fetch := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", boom
		}
		return "recuperado", nil
	}

	_, err := query.Read(context.Background(), c, query.BrandsKey(), fetch)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len(), "un fetch fallido no deja entrada en caché")

	v, err := query.Read(context.Background(), c, query.BrandsKey(), fetch)
	require.NoError(t, err)
	assert.Equal(t, "recuperado", v)
}

func TestInvalidateEntity_SoloLaEtiquetaRelacionada(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	fetchN := func(s string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) { return s, nil }
	}

	_, err := query.Read(ctx, c, query.ProductsKey(), fetchN("p"))
	require.NoError(t, err)
	_, err = query.Read(ctx, c, query.BrandsKey(), fetchN("b"))
	require.NoError(t, err)
	_, err = query.Read(ctx, c, query.SaleKey("s1"), fetchN("v1"))
	require.NoError(t, err)
	_, err = query.Read(ctx, c, query.SaleKey("s2"), fetchN("v2"))
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	// Crear un producto invalida el listado y los agregados de venta,
	// pero no el listado de marcas.
	c.InvalidateEntity(query.EntityProducts, query.EntitySale)
	assert.Equal(t, 1, c.Len())

	var brandCalls int32
	_, err = query.Read(ctx, c, query.BrandsKey(), func(context.Context) (string, error) {
		atomic.AddInt32(&brandCalls, 1)
		return "b", nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&brandCalls), "brands sigue cacheado")

	var prodCalls int32
	_, err = query.Read(ctx, c, query.ProductsKey(), func(context.Context) (string, error) {
		atomic.AddInt32(&prodCalls, 1)
		return "p2", nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&prodCalls), "products se refresca tras la invalidación")
}

func TestInvalidate_ClavePuntual(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()
	_, err := query.Read(ctx, c, query.SaleKey("s1"), func(context.Context) (string, error) { return "v", nil })
	require.NoError(t, err)

	c.Invalidate(query.SaleKey("s1"))
	assert.Equal(t, 0, c.Len())
}
