package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustchain/internal/domain"
)

type header struct {
	Nature string      `json:"nature"`
	Index  uint64      `json:"index"`
	Author domain.Hash `json:"author"`
}

func TestMarshalUsesTextMarshaler(t *testing.T) {
	in := header{Nature: "trustchain_creation", Index: 1, Author: domain.Hash{0xab}}

	data, err := Marshal(in)
	require.NoError(t, err)

	diag, err := Diagnose(data)
	require.NoError(t, err)
	assert.Contains(t, diag, `"ab`+strings.Repeat("00", domain.HashSize-1)+`"`)
	assert.Contains(t, diag, `"nature": "trustchain_creation"`)
}

func TestMarshalDeterministic(t *testing.T) {
	m := map[string]any{"z": 1, "a": []byte{1, 2}, "m": "x"}
	first, err := Marshal(m)
	require.NoError(t, err)
	for range 10 {
		again, err := Marshal(m)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, again))
	}
}

func TestDiagnoseSortsKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"nested": map[string]any{"k": "v"}, "a": 1})
	require.NoError(t, err)

	diag, err := Diagnose(data)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1, "nested": {"k": "v"}}`, diag)
}

func TestDiagnoseRejectsMalformed(t *testing.T) {
	_, err := Diagnose([]byte{0xa1})
	assert.Error(t, err)
}
