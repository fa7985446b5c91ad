package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

func TestHasForbiddenCharacter(t *testing.T) {
	for _, c := range strings.Split(rules.ForbiddenCharacters, "") {
		assert.True(t, rules.HasForbiddenCharacter("motor"+c+"x"), "%q debe ser prohibido", c)
	}
	assert.False(t, rules.HasForbiddenCharacter(""), "el texto vacío nunca es prohibido")
	assert.False(t, rules.HasForbiddenCharacter("Hélice 5 pulgadas #2"))
	assert.False(t, rules.HasForbiddenCharacter("プロペラ"))
}

func TestExceedsLength_CuentaRunas(t *testing.T) {
	assert.False(t, rules.ExceedsLength(strings.Repeat("a", 20), 20))
	assert.True(t, rules.ExceedsLength(strings.Repeat("a", 21), 20))
	// 20 caracteres multibyte siguen siendo 20.
	assert.False(t, rules.ExceedsLength(strings.Repeat("羽", 20), 20))
	assert.True(t, rules.ExceedsLength(strings.Repeat("羽", 21), 20))
}

func TestOutOfRange_Limites(t *testing.T) {
	cases := []struct {
		value int
		want  bool
	}{
		{-1, true},
		{0, false},
		{5000, false},
		{10000, false},
		{10001, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rules.OutOfRange(tc.value, rules.MinStockAmount, rules.MaxStockAmount), "valor %d", tc.value)
	}
}

func TestIsKnownRegion(t *testing.T) {
	assert.True(t, rules.IsKnownRegion("東京都"))
	assert.True(t, rules.IsKnownRegion("東京"), "coincidencia por subcadena")
	assert.True(t, rules.IsKnownRegion("北海道"))
	assert.False(t, rules.IsKnownRegion(""), "vacío no es región")
	assert.False(t, rules.IsKnownRegion("Tokyo"))
	assert.False(t, rules.IsKnownRegion("東京都渋谷区"))
}

func TestRegions_DevuelveCopia(t *testing.T) {
	list := rules.Regions()
	assert.Len(t, list, 47)
	list[0] = "modificado"
	assert.Equal(t, "北海道", rules.Regions()[0])
}
