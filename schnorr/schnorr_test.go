package schnorr

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alineuh/zkvote/group"
)

var testGroup = group.Secp256k1()

func TestSignVerify(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	msg := []byte("hello, zero-knowledge")
	sig, err := Sign(rand.Reader, testGroup, keys.SK, msg)
	require.NoError(t, err)

	require.True(t, Verify(testGroup, keys.PK, msg, sig))
	require.False(t, Verify(testGroup, keys.PK, []byte("wrong message"), sig))

	other, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)
	require.False(t, Verify(testGroup, other.PK, msg, sig))
}

func TestFreshNonce(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	msg := []byte("same message twice")
	sigA, err := Sign(rand.Reader, testGroup, keys.SK, msg)
	require.NoError(t, err)
	sigB, err := Sign(rand.Reader, testGroup, keys.SK, msg)
	require.NoError(t, err)

	// Two signatures over the same message must use distinct nonces.
	require.False(t, sigA.R.IsEqual(sigB.R))
	require.True(t, Verify(testGroup, keys.PK, msg, sigA))
	require.True(t, Verify(testGroup, keys.PK, msg, sigB))
}

func TestTamperedSignature(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	msg := []byte("payload")
	sig, err := Sign(rand.Reader, testGroup, keys.SK, msg)
	require.NoError(t, err)

	bad := sig
	bad.S = new(big.Int).Add(sig.S, big.NewInt(1))
	bad.S.Mod(bad.S, testGroup.N())
	require.False(t, Verify(testGroup, keys.PK, msg, bad))
}

func TestSignatureCodec(t *testing.T) {
	keys, err := KeyGen(rand.Reader, testGroup)
	require.NoError(t, err)

	msg := []byte("serialize me")
	sig, err := Sign(rand.Reader, testGroup, keys.SK, msg)
	require.NoError(t, err)

	data, err := EncodeSignature(testGroup, sig)
	require.NoError(t, err)
	require.Len(t, data, testGroup.ElementSize()+testGroup.ScalarSize())

	back, err := DecodeSignature(testGroup, data)
	require.NoError(t, err)
	require.True(t, Verify(testGroup, keys.PK, msg, back))

	_, err = DecodeSignature(testGroup, data[:len(data)-1])
	require.ErrorIs(t, err, ErrSignatureSize)
}
