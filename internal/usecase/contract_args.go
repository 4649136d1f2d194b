package usecase

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseConstructorArgs converts command line strings into the Go values
// go-ethereum packs for the constructor inputs of contractABI.
func ParseConstructorArgs(contractABI abi.ABI, raw []string) ([]any, error) {
	inputs := contractABI.Constructor.Inputs

	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("constructor expects %d argument(s) %s, got %d", len(inputs), describeInputs(inputs), len(raw))
	}

	args := make([]any, 0, len(raw))
	for i, input := range inputs {
		value, err := ParseArg(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		args = append(args, value)
	}
	return args, nil
}

// ParseArg converts one string to the Go representation of an ABI type.
func ParseArg(t abi.Type, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("invalid address %q", raw)
		}
		return common.HexToAddress(raw), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", raw)
		}
		return b, nil

	case abi.StringTy:
		return raw, nil

	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		if t.T == abi.UintTy && n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %q for unsigned type", raw)
		}
		if !fitsInt(t, n) {
			return nil, fmt.Errorf("value %q overflows %s", raw, t.String())
		}
		return sizedInt(t, n), nil

	case abi.BytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %v", raw, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %v", raw, err)
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("%d bytes do not fit %s", len(b), t.String())
		}
		// Right-pad into the fixed array type go-ethereum expects
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	default:
		return nil, fmt.Errorf("unsupported type %s on the command line", t.String())
	}
}

func fitsInt(t abi.Type, n *big.Int) bool {
	if t.T == abi.UintTy {
		return n.BitLen() <= t.Size
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Sign() < 0 {
		return new(big.Int).Neg(n).Cmp(limit) <= 0
	}
	return n.Cmp(limit) < 0
}

// sizedInt returns the exact Go integer type abi.Pack requires for t
func sizedInt(t abi.Type, n *big.Int) any {
	if t.T == abi.UintTy {
		switch t.Size {
		case 8:
			return uint8(n.Uint64())
		case 16:
			return uint16(n.Uint64())
		case 32:
			return uint32(n.Uint64())
		case 64:
			return n.Uint64()
		}
		return n
	}
	switch t.Size {
	case 8:
		return int8(n.Int64())
	case 16:
		return int16(n.Int64())
	case 32:
		return int32(n.Int64())
	case 64:
		return n.Int64()
	}
	return n
}

func describeInputs(inputs abi.Arguments) string {
	parts := make([]string, 0, len(inputs))
	for _, in := range inputs {
		parts = append(parts, strings.TrimSpace(in.Type.String()+" "+in.Name))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
