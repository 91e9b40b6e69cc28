package inspect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"trustchain/internal/block"
	"trustchain/internal/codec"
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/payload"
)

func rootView(t *testing.T) (View, block.Block) {
	t.Helper()
	priv, _, err := crypto.GenerateSignatureKeyPair()
	require.NoError(t, err)
	root, err := block.NewRoot(priv)
	require.NoError(t, err)
	v, err := NewView(root)
	require.NoError(t, err)
	return v, root
}

func TestNewView(t *testing.T) {
	v, root := rootView(t)
	assert.Equal(t, root.Hash(), v.Hash)
	assert.Equal(t, "trustchain_creation", v.Nature)
	assert.Equal(t, uint64(1), v.NatureTag)
	assert.Equal(t, uint64(block.RootIndex), v.Index)
	_, ok := v.Payload.(payload.TrustchainCreation)
	assert.True(t, ok)
}

func TestRenderFormatsAgree(t *testing.T) {
	v, root := rootView(t)

	jsonOut, err := Render(v, FormatJSON)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonOut, &fromJSON))
	assert.Equal(t, root.TrustchainID.String(), fromJSON["trustchain_id"])

	yamlOut, err := Render(v, FormatYAML)
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(yamlOut, &fromYAML))
	assert.Equal(t, root.TrustchainID.String(), fromYAML["trustchain_id"])
	assert.Equal(t, 1, fromYAML["index"])

	cborOut, err := Render(v, FormatCBOR)
	require.NoError(t, err)
	diag, err := codec.Diagnose(cborOut)
	require.NoError(t, err)
	assert.Contains(t, diag, `"trustchain_id": "`+root.TrustchainID.String()+`"`)
	assert.Contains(t, diag, `"nature": "trustchain_creation"`)

	diagOut, err := Render(v, FormatCBORDiag)
	require.NoError(t, err)
	assert.Equal(t, diag+"\n", string(diagOut))
}

func TestRenderKeepsLargeIntegers(t *testing.T) {
	dev := payload.UserDevice{Revoked: payload.NotRevoked}
	out, err := Render(dev, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "revoked: 18446744073709551615")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(struct{}{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewViewRejectsBadPayload(t *testing.T) {
	b := block.Block{Nature: 1, Payload: []byte{1}, Author: domain.Hash{}}
	_, err := NewView(b)
	assert.Error(t, err)
}
