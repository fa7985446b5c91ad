package filter

// Predicate conjunción de condiciones más un orden ascendente por columna.
// Siempre contiene la condición base con la que fue creado.
type Predicate[T any] struct {
	orderBy    string
	conditions []Condition[T]
}

// New crea un predicado con su condición base obligatoria.
func New[T any](orderBy string, baseline ...Condition[T]) *Predicate[T] {
	p := &Predicate[T]{orderBy: orderBy}
	p.conditions = append(p.conditions, baseline...)
	return p
}

// Refine agrega la condición construida por build solo si present es verdadero.
// Un campo ausente no restringe el resultado.
func (p *Predicate[T]) Refine(present bool, build func() Condition[T]) *Predicate[T] {
	if present {
		p.conditions = append(p.conditions, build())
	}
	return p
}

// Conditions devuelve una copia de las condiciones en orden de inserción.
func (p *Predicate[T]) Conditions() []Condition[T] {
	out := make([]Condition[T], len(p.conditions))
	copy(out, p.conditions)
	return out
}

// OrderBy columna de ordenamiento ascendente.
func (p *Predicate[T]) OrderBy() string { return p.orderBy }

// Matches es verdadero si la fila cumple todas las condiciones.
func (p *Predicate[T]) Matches(row *T) bool {
	for _, c := range p.conditions {
		if !c.Matches(row) {
			return false
		}
	}
	return true
}
