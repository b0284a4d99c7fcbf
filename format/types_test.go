package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCodes_Fixed(t *testing.T) {
	// External layout contract; renumbering breaks every existing reader.
	require.Equal(t, Type(0), TypeInt32)
	require.Equal(t, Type(1), TypeUint32)
	require.Equal(t, Type(2), TypeInt64)
	require.Equal(t, Type(3), TypeUint64)
	require.Equal(t, Type(4), TypeFloat32)
	require.Equal(t, Type(5), TypeFloat64)
	require.Equal(t, Type(6), TypeString)
}

func TestSemanticsCodes_Fixed(t *testing.T) {
	require.Equal(t, Semantics(1), SemCounter)
	require.Equal(t, Semantics(3), SemInstant)
	require.Equal(t, Semantics(4), SemDiscrete)
}

func TestLayoutConstants(t *testing.T) {
	require.Equal(t, 64, NameMaxLen)
	require.Equal(t, 256, StringBlockLen)
	require.Equal(t, 10, ItemBitLen)
	require.Equal(t, 0x3FF, ItemMask)
	require.Equal(t, 8, NumericValueLen)
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeInt32, "Int32"},
		{TypeUint32, "Uint32"},
		{TypeInt64, "Int64"},
		{TypeUint64, "Uint64"},
		{TypeFloat32, "Float32"},
		{TypeFloat64, "Float64"},
		{TypeString, "String"},
		{Type(99), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.String())
	}
}

func TestSemanticsString(t *testing.T) {
	tests := []struct {
		sem  Semantics
		want string
	}{
		{SemCounter, "Counter"},
		{SemInstant, "Instant"},
		{SemDiscrete, "Discrete"},
		{Semantics(2), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.sem.String())
	}
}
