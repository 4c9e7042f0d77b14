package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Address identifies a creator, backer or payout recipient.
type Address = common.Address

// ZeroAddress is never a valid principal.
var ZeroAddress Address

// ParseAddress accepts a 0x-prefixed (or bare) 40 hex digit address and
// rejects the zero address.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return ZeroAddress, ErrInvalidAddress
	}
	addr := common.HexToAddress(s)
	if addr == ZeroAddress {
		return ZeroAddress, ErrInvalidAddress
	}
	return addr, nil
}
