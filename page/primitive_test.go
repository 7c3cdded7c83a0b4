package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatsExtractsInOrder(t *testing.T) {
	got, err := Floats([]Operand{1.0, 2.5, 3.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.5, 3.0}, got)
}

func TestFloatRejectsNonNumber(t *testing.T) {
	_, err := Float(Name("Foo"))
	assert.Error(t, err, "expected error for name operand")
}

func TestStringBytesRejectsWrongType(t *testing.T) {
	_, err := StringBytes(1.0)
	assert.Error(t, err, "expected error for non-string operand")
}
