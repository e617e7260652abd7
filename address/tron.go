package address

import (
	"bytes"
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"github.com/veilpay/veilpay-signing/errs"
)

const (
	// tronPrefix is the mainnet address version byte, Base58Check
	// encodings of it always start with 'T'.
	tronPrefix = 0x41

	tronPayloadLength = 1 + common.AddressLength + 4
)

// EncodeTron encodes a 20-byte account body into the TRON Base58Check
// display form.
func EncodeTron(body [common.AddressLength]byte) string {
	payload := make([]byte, 0, tronPayloadLength)
	payload = append(payload, tronPrefix)
	payload = append(payload, body[:]...)
	payload = append(payload, tronChecksum(payload)...)
	return base58.Encode(payload)
}

// DecodeTron decodes and verifies a TRON Base58Check address, returning
// the 20-byte account body.
func DecodeTron(display string) ([common.AddressLength]byte, error) {
	var body [common.AddressLength]byte

	payload, err := base58.Decode(display)
	if err != nil {
		return body, errs.NewValidationError("address", "%s is not valid base58: %s", display, err)
	}
	if len(payload) != tronPayloadLength {
		return body, errs.NewValidationError("address", "%s decodes to %d bytes, expected %d", display, len(payload), tronPayloadLength)
	}
	if payload[0] != tronPrefix {
		return body, errs.NewValidationError("address", "%s has version byte %#x, expected %#x", display, payload[0], tronPrefix)
	}
	if !bytes.Equal(tronChecksum(payload[:21]), payload[21:]) {
		return body, errs.NewValidationError("address", "%s has an invalid checksum", display)
	}

	copy(body[:], payload[1:21])
	return body, nil
}

func tronChecksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}
