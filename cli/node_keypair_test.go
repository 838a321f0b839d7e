package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKeyMaterial(t *testing.T) {
	pem := "-----BEGIN PUBLIC KEY-----\nMFkw\n-----END PUBLIC KEY-----\n"
	assert.Equal(t, pem, formatKeyMaterial([]byte(pem)))

	compressedPoint := []byte{0x02, 0xab, 0xcd, 0xef}
	assert.Equal(t, "02abcdef", formatKeyMaterial(compressedPoint))
}
