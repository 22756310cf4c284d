package memory

import (
	"sort"
	"sync"
)

// collection es un almacén genérico en memoria con ids secuenciales.
// El contador es estrictamente monótono: un id que se borra no se reutiliza
// nunca, así que en todo momento los ids son positivos y únicos.
//
// Un solo mutex por colección cubre cada secuencia read-modify-write
// (chequeo de conflicto + insert, existencia + replace, existencia + remove,
// clear); sin él, el adapter no es seguro para callers concurrentes.
type collection[E any] struct {
	mu     sync.RWMutex
	byID   map[int64]E
	lastID int64
}

func newCollection[E any]() *collection[E] {
	return &collection[E]{byID: make(map[int64]E)}
}

// create asigna el siguiente id bajo el mismo lock que el chequeo de
// conflicto. conflict puede ser nil; si devuelve true para algún registro
// existente, no se inserta y ok es false.
func (c *collection[E]) create(build func(id int64) E, conflict func(existing E) bool) (e E, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conflict != nil {
		for _, existing := range c.byID {
			if conflict(existing) {
				var zero E
				return zero, false
			}
		}
	}

	c.lastID++
	e = build(c.lastID)
	c.byID[c.lastID] = e
	return e, true
}

func (c *collection[E]) get(id int64) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[id]
	return e, ok
}

// all devuelve un snapshot en orden de id ascendente. Como los ids son
// monótonos, esto equivale al orden de inserción.
func (c *collection[E]) all() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int64, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	return out
}

// replace reemplaza el registro completo; false si el id no existe.
func (c *collection[E]) replace(id int64, e E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return false
	}
	c.byID[id] = e
	return true
}

// remove elimina y devuelve el registro eliminado; false si el id no existe.
func (c *collection[E]) remove(id int64) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.byID[id]
	if !ok {
		var zero E
		return zero, false
	}
	delete(c.byID, id)
	return e, true
}

// clear vacía la colección. El contador no se resetea: los ids siguen
// siendo monótonos a lo largo de la vida del proceso.
func (c *collection[E]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID = make(map[int64]E)
}
