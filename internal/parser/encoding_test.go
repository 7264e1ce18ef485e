package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText_UTF8PassesThrough(t *testing.T) {
	content := []byte("NEWSEC,1.001,50.0,90,,\n")

	decoded, err := DecodeText(content)

	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDecodeText_StripsBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("NEWSEC,1.001,50.0,90,,")...)

	decoded, err := DecodeText(content)

	require.NoError(t, err)
	assert.Equal(t, "NEWSEC,1.001,50.0,90,,", string(decoded))
}

func TestDecodeText_Windows1252(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252 and invalid standalone UTF-8.
	content := []byte("SECBEARING,90\xb0,,,,")

	decoded, err := DecodeText(content)

	require.NoError(t, err)
	assert.Contains(t, string(decoded), "90°")
}
