package wallet

import (
	"math/big"
	"strings"

	"github.com/itchyny/base58-go"
	"github.com/pkg/errors"
)

// decodeBase58 decodes bitcoin-alphabet base58, keeping leading zero bytes
// that the big number round trip would drop.
func decodeBase58(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty base58 string")
	}
	zeros := len(s) - len(strings.TrimLeft(s, "1"))
	decoded, err := base58.BitcoinEncoding.Decode([]byte(s))
	if err != nil {
		return nil, err
	}
	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return nil, errors.New("malformed base58 string")
	}
	return append(make([]byte, zeros), x.Bytes()...), nil
}

func encodeBase58(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	prefix := strings.Repeat("1", zeros)
	if zeros == len(data) {
		return prefix
	}
	bi := new(big.Int).SetBytes(data[zeros:]).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return prefix + string(encoded)
}
