package jsonutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStringsEmptyIsNull(t *testing.T) {
	s, err := EncodeStrings(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = EncodeStrings([]string{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestStringsRoundTrip(t *testing.T) {
	s, err := EncodeStrings([]string{"spacer", "button"})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, `["spacer","button"]`, *s)

	out, err := DecodeStrings(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"spacer", "button"}, out)
}

func TestDecodeStringsRejectsGarbage(t *testing.T) {
	bad := "{not json"
	_, err := DecodeStrings(&bad)
	assert.Error(t, err)

	out, err := DecodeStrings(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWriteIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndented(&buf, map[string]int{"rows": 13}))
	assert.Equal(t, "{\n  \"rows\": 13\n}\n", buf.String())
}
