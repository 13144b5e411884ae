// Package query implementa la capa de caché de lecturas: read-through con
// clave compuesta por (entidad, parámetros), lecturas concurrentes
// coalescidas bajo una misma clave e invalidación explícita por etiqueta de
// entidad al confirmarse una mutación relacionada.
package query

import "strings"

// Key identidad de una lectura cacheada. Se compone como "entidad" o
// "entidad:parámetro", p. ej. "products", "sale:1234".
type Key string

// Etiquetas de entidad de las que depende cada clave.
const (
	EntityProducts = "products"
	EntityBrands   = "brands"
	EntityStores   = "stores"
	EntityProduct  = "product"
	EntitySale     = "sale"
)

// ProductsKey clave del listado de productos.
func ProductsKey() Key { return EntityProducts }

// BrandsKey clave del listado de marcas.
func BrandsKey() Key { return EntityBrands }

// StoresKey clave del listado de tiendas.
func StoresKey() Key { return EntityStores }

// ProductKey clave del detalle de un producto.
func ProductKey(id string) Key { return Key(EntityProduct + ":" + id) }

// SaleKey clave de la vista agregada pública de un producto.
func SaleKey(id string) Key { return Key(EntitySale + ":" + id) }

// Entity devuelve la etiqueta de entidad de la clave (el prefijo antes
// de los dos puntos).
func (k Key) Entity() string {
	s := string(k)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return s
}
