package sigma

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alineuh/zkvote/elgamal"
)

func TestDecryptionProofCompleteness(t *testing.T) {
	keys, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc := encryptCode(t, keys, 42)
	proof, err := ProveCorrectDecryption(rand.Reader, testGroup, keys.SK,
		keys.PK, enc.Ciphertext, 42)
	require.NoError(t, err)
	require.True(t, VerifyCorrectDecryption(testGroup, keys.PK, enc.Ciphertext, 42, proof))
}

func TestDecryptionProofWrongPlaintext(t *testing.T) {
	keys, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc := encryptCode(t, keys, 42)
	proof, err := ProveCorrectDecryption(rand.Reader, testGroup, keys.SK,
		keys.PK, enc.Ciphertext, 42)
	require.NoError(t, err)

	// The proof binds the claimed plaintext through the transcript.
	require.False(t, VerifyCorrectDecryption(testGroup, keys.PK, enc.Ciphertext, 43, proof))
}

func TestDecryptionProofTamperRejected(t *testing.T) {
	keys, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc := encryptCode(t, keys, 7)
	proof, err := ProveCorrectDecryption(rand.Reader, testGroup, keys.SK,
		keys.PK, enc.Ciphertext, 7)
	require.NoError(t, err)

	bad := proof
	bad.Z = new(big.Int).Add(proof.Z, big.NewInt(1))
	bad.Z.Mod(bad.Z, testGroup.N())
	require.False(t, VerifyCorrectDecryption(testGroup, keys.PK, enc.Ciphertext, 7, bad))
}

func TestDecryptionProofWrongKey(t *testing.T) {
	keys, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)
	other, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc := encryptCode(t, keys, 7)
	proof, err := ProveCorrectDecryption(rand.Reader, testGroup, other.SK,
		other.PK, enc.Ciphertext, 7)
	require.NoError(t, err)

	// Proving with a key that did not produce the ciphertext fails the
	// second verification equation.
	require.False(t, VerifyCorrectDecryption(testGroup, other.PK, enc.Ciphertext, 7, proof))
}

func TestDecryptionProofCodec(t *testing.T) {
	keys, err := elgamal.KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	enc := encryptCode(t, keys, 100)
	proof, err := ProveCorrectDecryption(rand.Reader, testGroup, keys.SK,
		keys.PK, enc.Ciphertext, 100)
	require.NoError(t, err)

	data, err := EncodeDecryptionProof(testGroup, proof)
	require.NoError(t, err)
	require.Len(t, data, 2*(testGroup.ElementSize()+testGroup.ScalarSize()))

	back, err := DecodeDecryptionProof(testGroup, data)
	require.NoError(t, err)
	require.True(t, VerifyCorrectDecryption(testGroup, keys.PK, enc.Ciphertext, 100, back))

	_, err = DecodeDecryptionProof(testGroup, append(data, 0))
	require.ErrorIs(t, err, ErrProofSize)
}
