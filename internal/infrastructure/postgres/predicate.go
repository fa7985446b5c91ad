package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// likeEscaper escapa los comodines de LIKE; PostgreSQL usa '\' como escape por defecto.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereClause traduce las condiciones del predicado a una conjunción SQL.
func whereClause[T any](pred *filter.Predicate[T]) (sq.And, error) {
	conds := pred.Conditions()
	out := make(sq.And, 0, len(conds))
	for _, c := range conds {
		switch c.Op {
		case filter.OpEq:
			out = append(out, sq.Eq{c.Field: c.Value})
		case filter.OpContains:
			s, ok := c.Value.(string)
			if !ok {
				return nil, fmt.Errorf("condición %s sobre %s: se esperaba texto", c.Op, c.Field)
			}
			out = append(out, sq.Like{c.Field: "%" + likeEscaper.Replace(s) + "%"})
		case filter.OpGte:
			out = append(out, sq.GtOrEq{c.Field: c.Value})
		case filter.OpLte:
			out = append(out, sq.LtOrEq{c.Field: c.Value})
		default:
			return nil, fmt.Errorf("operador no soportado: %s", c.Op)
		}
	}
	return out, nil
}

// selectWhere arma SELECT columns FROM table WHERE pred ORDER BY pred.OrderBy() ASC.
func selectWhere[T any](table string, columns []string, pred *filter.Predicate[T]) (string, []any, error) {
	where, err := whereClause(pred)
	if err != nil {
		return "", nil, err
	}
	q := builder.Select(columns...).From(table)
	if len(where) > 0 {
		q = q.Where(where)
	}
	if col := pred.OrderBy(); col != "" {
		q = q.OrderBy(col + " ASC")
	}
	return q.ToSql()
}
