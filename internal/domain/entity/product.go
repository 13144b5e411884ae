package entity

import "time"

// Product producto embotellado tal como lo devuelve el API remoto.
// El contrato mezcla camelCase y snake_case; se respeta sin normalizar.
// Las fechas de producción/vencimiento llegan como fecha ISO sin hora,
// por eso se mantienen como string y no como time.Time.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          BrandRef  `json:"brand"`
	VolumeMl       int       `json:"volumeMl"`
	ProductionDate string    `json:"production_date"`
	ExpirationDate string    `json:"expiration_date"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BrandRef referencia mínima a la marca embebida en un producto.
type BrandRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
