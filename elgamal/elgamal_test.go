package elgamal

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alineuh/zkvote/group"
)

var testGroup = group.Secp256k1()

func TestRoundTrip(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	for _, m := range []int64{0, 1, 10, 42, 100, 999} {
		enc, err := Encrypt(rand.Reader, testGroup, keys.PK, m, 1000)
		require.NoError(t, err)

		dec, err := Decrypt(testGroup, keys.SK, enc.Ciphertext, 1000)
		require.NoError(t, err)
		require.Equal(t, m, dec)
	}
}

func TestMessageRange(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	_, err = Encrypt(rand.Reader, testGroup, keys.PK, 1000, 1000)
	require.ErrorIs(t, err, ErrMessageRange)

	_, err = Encrypt(rand.Reader, testGroup, keys.PK, -1, 1000)
	require.ErrorIs(t, err, ErrMessageRange)
}

func TestDlogBound(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc, err := Encrypt(rand.Reader, testGroup, keys.PK, 42, 1000)
	require.NoError(t, err)

	// A search bound below the plaintext must fail, not return garbage.
	_, err = Decrypt(testGroup, keys.SK, enc.Ciphertext, 42)
	require.ErrorIs(t, err, ErrDlogNotFound)
}

func TestHomomorphicAddition(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	encA, err := Encrypt(rand.Reader, testGroup, keys.PK, 5, 100)
	require.NoError(t, err)
	encB, err := Encrypt(rand.Reader, testGroup, keys.PK, 7, 100)
	require.NoError(t, err)

	sum := AddCiphertexts(testGroup, encA.Ciphertext, encB.Ciphertext)
	dec, err := Decrypt(testGroup, keys.SK, sum, 100)
	require.NoError(t, err)
	require.Equal(t, int64(12), dec)
}

func TestFreshEncryptionRandomness(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	encA, err := Encrypt(rand.Reader, testGroup, keys.PK, 1, 10)
	require.NoError(t, err)
	encB, err := Encrypt(rand.Reader, testGroup, keys.PK, 1, 10)
	require.NoError(t, err)

	require.NotEqual(t, 0, encA.Nonce.Cmp(encB.Nonce))
	require.False(t, encA.Ciphertext.C1.IsEqual(encB.Ciphertext.C1))
}

func TestCiphertextCodec(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc, err := Encrypt(rand.Reader, testGroup, keys.PK, 7, 100)
	require.NoError(t, err)

	data, err := enc.Ciphertext.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2*testGroup.ElementSize())

	back, err := UnmarshalCiphertext(testGroup, data)
	require.NoError(t, err)
	require.True(t, back.C1.IsEqual(enc.Ciphertext.C1))
	require.True(t, back.C2.IsEqual(enc.Ciphertext.C2))

	_, err = UnmarshalCiphertext(testGroup, data[:len(data)-1])
	require.True(t, errors.Is(err, ErrCiphertextSize))
}
