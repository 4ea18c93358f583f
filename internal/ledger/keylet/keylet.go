// Package keylet derives ledger entry indexes from their natural keys, so
// the metadata engine can locate the entry a transaction created (e.g. the
// offer node belonging to an account/sequence pair).
package keylet

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Space identifiers, matching rippled's LedgerNameSpace enum.
const (
	spaceOffer  uint16 = 'o'
	spaceEscrow uint16 = 'u'
	spaceTicket uint16 = 'T'
	spaceCheck  uint16 = 'C'
)

// ledgerAlphabet is the base58 dictionary the ledger uses for addresses.
var ledgerAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

var ErrInvalidAddress = errors.New("invalid account address")

// DecodeAccountID decodes a classic address into its 20-byte account ID,
// verifying the 4-byte double-SHA256 checksum.
func DecodeAccountID(address string) ([20]byte, error) {
	var accountID [20]byte

	decoded, err := base58.DecodeAlphabet(address, ledgerAlphabet)
	if err != nil {
		return accountID, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != 25 || decoded[0] != 0x00 {
		return accountID, ErrInvalidAddress
	}

	payload, checksum := decoded[:21], decoded[21:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	for i := 0; i < 4; i++ {
		if checksum[i] != second[i] {
			return accountID, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
		}
	}

	copy(accountID[:], payload[1:])
	return accountID, nil
}

// sha512Half is the ledger's index hash: the first half of SHA-512.
func sha512Half(inputs ...[]byte) [32]byte {
	h := sha512.New()
	for _, input := range inputs {
		h.Write(input)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil)[:32])
	return out
}

func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return sha512Half(inputs...)
}

func sequenceIndex(space uint16, owner string, sequence uint32) (string, error) {
	accountID, err := DecodeAccountID(owner)
	if err != nil {
		return "", err
	}
	seqBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(seqBytes, sequence)
	key := indexHash(space, accountID[:], seqBytes)
	return toHex(key), nil
}

// Offer returns the ledger index of the offer created by owner at sequence.
func Offer(owner string, sequence uint32) (string, error) {
	return sequenceIndex(spaceOffer, owner, sequence)
}

// Escrow returns the ledger index of the escrow created by owner at sequence.
func Escrow(owner string, sequence uint32) (string, error) {
	return sequenceIndex(spaceEscrow, owner, sequence)
}

// Check returns the ledger index of the check created by owner at sequence.
func Check(owner string, sequence uint32) (string, error) {
	return sequenceIndex(spaceCheck, owner, sequence)
}

// Ticket returns the ledger index of a ticket by owner and ticket sequence.
func Ticket(owner string, ticketSequence uint32) (string, error) {
	return sequenceIndex(spaceTicket, owner, ticketSequence)
}

func toHex(key [32]byte) string {
	dst := make([]byte, 64)
	hex.Encode(dst, key[:])
	for i, c := range dst {
		if c >= 'a' && c <= 'f' {
			dst[i] = c - 'a' + 'A'
		}
	}
	return string(dst)
}
