package codechain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	accountIDSize          = 20
	platformAddressVersion = 1
)

// AccountID hashes a public key into the 20-byte account id.
func AccountID(publicKey []byte) ([]byte, error) {
	h, err := blake2b.New(accountIDSize, nil)
	if err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	h.Write(publicKey)
	return h.Sum(nil), nil
}

// EncodePlatformAddress renders an account id as a platform address of networkID. The
// human-readable part is the network id followed by "c" and carries no separator.
func EncodePlatformAddress(networkID string, accountID []byte) (string, error) {
	if len(networkID) != 2 {
		return "", fmt.Errorf("network id %q must be two characters", networkID)
	}
	if len(accountID) != accountIDSize {
		return "", fmt.Errorf("account id has %d bytes, want %d", len(accountID), accountIDSize)
	}
	payload := append([]byte{platformAddressVersion}, accountID...)
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}
	hrp := networkID + "c"
	encoded, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return hrp + strings.TrimPrefix(encoded, hrp+"1"), nil
}

// DecodePlatformAddress returns the network id and account id of a platform address.
func DecodePlatformAddress(address string) (string, []byte, error) {
	if len(address) < 4 || address[2] != 'c' {
		return "", nil, fmt.Errorf("malformed platform address %q", address)
	}
	hrp, words, err := bech32.Decode(address[:3] + "1" + address[3:])
	if err != nil {
		return "", nil, fmt.Errorf("bech32 decode %q: %w", address, err)
	}
	payload, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("convert bits: %w", err)
	}
	if len(payload) != accountIDSize+1 || payload[0] != platformAddressVersion {
		return "", nil, errors.New("unsupported platform address version or length")
	}
	return hrp[:2], payload[1:], nil
}

// PlatformAddressFromPublic derives the platform address of a hex encoded public key.
func PlatformAddressFromPublic(networkID, publicKey string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(publicKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("decode public key: %w", err)
	}
	id, err := AccountID(raw)
	if err != nil {
		return "", err
	}
	return EncodePlatformAddress(networkID, id)
}
