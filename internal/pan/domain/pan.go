// Package domain defines the PAN value object and card network classification.
//
// A PAN can only be obtained through ParsePAN, which enforces the structural
// and checksum invariants. Invalid byte sequences never become a PAN value.
package domain

import (
	"strconv"
)

// PAN length bounds per ISO/IEC 7812.
const (
	MinPANLength = 12
	MaxPANLength = 19
)

// CardNetwork identifies the payment network a PAN belongs to. The network is
// used only for format decisions (mask width, expected length) and is never
// security-relevant.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkDiscover   CardNetwork = "discover"
	NetworkUnknown    CardNetwork = "unknown"
)

// String returns the string representation of the card network.
func (n CardNetwork) String() string {
	return string(n)
}

// networkRule matches an inclusive numeric prefix range of a fixed digit
// width against a set of valid PAN lengths.
type networkRule struct {
	lo      int // lowest prefix value, inclusive
	hi      int // highest prefix value, inclusive
	width   int // number of prefix digits the range covers
	network CardNetwork
	lengths []int
}

// networkRules is ordered by descending prefix width so the longest prefix
// wins, per the usual IIN tie-breaking rule.
var networkRules = []networkRule{
	{lo: 6011, hi: 6011, width: 4, network: NetworkDiscover, lengths: []int{16}},
	{lo: 2221, hi: 2720, width: 4, network: NetworkMastercard, lengths: []int{16}},
	{lo: 34, hi: 34, width: 2, network: NetworkAmex, lengths: []int{15}},
	{lo: 37, hi: 37, width: 2, network: NetworkAmex, lengths: []int{15}},
	{lo: 51, hi: 55, width: 2, network: NetworkMastercard, lengths: []int{16}},
	{lo: 65, hi: 65, width: 2, network: NetworkDiscover, lengths: []int{16}},
	{lo: 4, hi: 4, width: 1, network: NetworkVisa, lengths: []int{13, 16, 19}},
}

// PAN is an immutable, validated Primary Account Number. The zero value is
// not a valid PAN; use ParsePAN.
type PAN struct {
	value   string
	network CardNetwork
}

// ParsePAN validates a raw digit string and returns a PAN value object.
//
// Validation order: character set, length, Luhn checksum. A PAN whose prefix
// matches no known network classifies as NetworkUnknown but still validates
// when the generic length and checksum checks pass. A prefix match whose
// length set excludes the actual length also classifies as NetworkUnknown
// rather than failing.
func ParsePAN(raw string) (PAN, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return PAN{}, ErrInvalidCharacters
		}
	}
	if len(raw) < MinPANLength || len(raw) > MaxPANLength {
		return PAN{}, ErrInvalidLength
	}
	if !luhnValid(raw) {
		return PAN{}, ErrChecksumFailed
	}

	return PAN{value: raw, network: classify(raw)}, nil
}

// String returns the raw PAN digits. This is the only intentional path back
// to cleartext digits; callers must not log the result.
func (p PAN) String() string {
	return p.value
}

// Network returns the card network derived from the PAN prefix.
func (p PAN) Network() CardNetwork {
	return p.network
}

// Length returns the number of digits in the PAN.
func (p PAN) Length() int {
	return len(p.value)
}

// LastFour returns the trailing four digits, the only fragment considered
// display-safe on its own.
func (p PAN) LastFour() string {
	return p.value[len(p.value)-4:]
}

// IsZero reports whether p is the zero value (never produced by ParsePAN).
func (p PAN) IsZero() bool {
	return p.value == ""
}

// MaskedPAN is a display-safe redacted rendering of a PAN. It has the same
// length as the source PAN and carries no recoverable information about the
// masked digits.
type MaskedPAN string

// String returns the masked rendering.
func (m MaskedPAN) String() string {
	return string(m)
}

// classify finds the card network via longest-prefix match against the
// static rule table.
func classify(pan string) CardNetwork {
	for _, rule := range networkRules {
		if len(pan) < rule.width {
			continue
		}
		prefix, err := strconv.Atoi(pan[:rule.width])
		if err != nil {
			continue
		}
		if prefix < rule.lo || prefix > rule.hi {
			continue
		}
		for _, l := range rule.lengths {
			if len(pan) == l {
				return rule.network
			}
		}
		// Prefix matched but the length is wrong for this network.
		return NetworkUnknown
	}
	return NetworkUnknown
}

// luhnValid runs the mod-10 double-and-sum check over a digit string,
// doubling alternate digits from the right.
func luhnValid(pan string) bool {
	sum := 0
	double := false
	for i := len(pan) - 1; i >= 0; i-- {
		digit := int(pan[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// LuhnCheckDigit computes the check digit that makes payload+digit pass the
// Luhn check. The payload must contain only digits.
func LuhnCheckDigit(payload string) int {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		digit := int(payload[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return (10 - sum%10) % 10
}
