package crypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabBoard/internal/errs"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	c := NewCipher("test-secret")

	plaintexts := []string{
		"hello",
		"",
		"multi\nline\nbody",
		`{"json":"payload","n":42}`,
		"unicode: héllo wörld 你好",
	}

	for _, pt := range plaintexts {
		blob, err := c.Encrypt(pt)
		require.NoError(t, err)

		got, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestEncryptNonceFreshness(t *testing.T) {
	c := NewCipher("test-secret")

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two encryptions of the same plaintext must differ")
}

func TestDecryptCorruptedBlob(t *testing.T) {
	c := NewCipher("test-secret")

	blob, err := c.Encrypt("hello")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	corrupted := base64.StdEncoding.EncodeToString(raw)

	_, err = c.Decrypt(corrupted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDecryptFailed))
}

func TestDecryptForeignKey(t *testing.T) {
	blob, err := NewCipher("key-one").Encrypt("hello")
	require.NoError(t, err)

	_, err = NewCipher("key-two").Decrypt(blob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDecryptFailed))
}

func TestDecryptTruncatedBlob(t *testing.T) {
	c := NewCipher("test-secret")

	_, err := c.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDecryptFailed))

	_, err = c.Decrypt("not base64 at all!!!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDecryptFailed))
}

func TestEmptySecretStillEncrypts(t *testing.T) {
	c := NewCipher("")

	blob, err := c.Encrypt("degraded but working")
	require.NoError(t, err)

	got, err := c.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "degraded but working", got)
}
