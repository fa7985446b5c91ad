package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drone-inventory/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate("secreto", "admin01", "drone-inventory", 5)
	require.NoError(t, err)

	adminID, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "admin01", adminID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secreto", "admin01", "drone-inventory", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate("secreto", "admin01", "drone-inventory", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "admin01", "drone-inventory", 5)
	assert.Error(t, err)
}
