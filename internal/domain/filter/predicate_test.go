package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

type part struct {
	ID     int64
	Name   string
	Amount int64
	Flag   int64
}

func byName(p *part) string  { return p.Name }
func byAmount(p *part) int64 { return p.Amount }
func byFlag(p *part) int64   { return p.Flag }

func TestPredicate_BaseSiempreAplica(t *testing.T) {
	p := filter.New("id", filter.Eq("flag", int64(0), byFlag))

	assert.True(t, p.Matches(&part{Flag: 0}))
	assert.False(t, p.Matches(&part{Flag: 1}))
	require.Len(t, p.Conditions(), 1)
	assert.Equal(t, "id", p.OrderBy())
}

func TestPredicate_RefineAusenteNoRestringe(t *testing.T) {
	called := false
	p := filter.New("id", filter.Eq("flag", int64(0), byFlag)).
		Refine(false, func() filter.Condition[part] {
			called = true
			return filter.Contains("name", "x", byName)
		})

	assert.False(t, called, "build no se invoca si el campo está ausente")
	assert.Len(t, p.Conditions(), 1)
	assert.True(t, p.Matches(&part{Name: "hélice"}))
}

func TestPredicate_Conjuncion(t *testing.T) {
	p := filter.New[part]("id").
		Refine(true, func() filter.Condition[part] { return filter.Contains("name", "motor", byName) }).
		Refine(true, func() filter.Condition[part] { return filter.AtLeast("amount", 10, byAmount) }).
		Refine(true, func() filter.Condition[part] { return filter.AtMost("amount", 20, byAmount) })

	assert.True(t, p.Matches(&part{Name: "motor brushless", Amount: 10}))
	assert.True(t, p.Matches(&part{Name: "mini motor", Amount: 20}))
	assert.False(t, p.Matches(&part{Name: "motor", Amount: 9}))
	assert.False(t, p.Matches(&part{Name: "motor", Amount: 21}))
	assert.False(t, p.Matches(&part{Name: "Motor", Amount: 15}), "contains es sensible a mayúsculas")

	conds := p.Conditions()
	require.Len(t, conds, 3)
	assert.Equal(t, filter.OpContains, conds[0].Op)
	assert.Equal(t, filter.OpGte, conds[1].Op)
	assert.Equal(t, int64(20), conds[2].Value)
}

func TestPredicate_ConditionsEsCopia(t *testing.T) {
	p := filter.New("id", filter.Eq("flag", int64(0), byFlag))
	conds := p.Conditions()
	conds[0].Field = "otro"
	assert.Equal(t, "flag", p.Conditions()[0].Field)
}
