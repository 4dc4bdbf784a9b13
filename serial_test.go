package incmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  SerialType
	}{
		{"nil", nil, SerialNil},
		{"error", errors.New("boom"), SerialError},
		{"string", "foo", SerialString},
		{"bytes", []byte("foo"), SerialString},
		{"int", 42, SerialInteger},
		{"int64", int64(-1), SerialInteger},
		{"uint8", uint8(7), SerialInteger},
		{"float32", float32(1.5), SerialDouble},
		{"float64", 2.5, SerialDouble},
		{"untagged type", struct{}{}, SerialNil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SerialTypeOf(tt.input))
		})
	}
}

func TestSerialType_String(t *testing.T) {
	require.Equal(t, "nil", SerialNil.String())
	require.Equal(t, "error", SerialError.String())
	require.Equal(t, "string", SerialString.String())
	require.Equal(t, "integer", SerialInteger.String())
	require.Equal(t, "double", SerialDouble.String())
	require.Equal(t, "unknown", SerialType(99).String())
}
