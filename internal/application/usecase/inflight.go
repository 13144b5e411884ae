package usecase

import "sync"

// InflightGuard garantiza como máximo un envío en curso por instancia de
// formulario. La clave es el token oculto que viaja en cada formulario
// renderizado; el equivalente servidor de deshabilitar el botón de envío.
type InflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewInflightGuard construye la guarda.
func NewInflightGuard() *InflightGuard {
	return &InflightGuard{active: make(map[string]struct{})}
}

// Acquire reserva la clave. Devuelve false si ya hay un envío en curso
// bajo esa clave.
func (g *InflightGuard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// Release libera la clave cuando el envío resuelve (éxito o fallo).
func (g *InflightGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
