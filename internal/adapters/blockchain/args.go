package blockchain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var bigIntType = reflect.TypeOf(&big.Int{})

// CoerceArgs converts command line strings into the Go values the constructor
// inputs expect. Values that aren't strings are passed through untouched.
func CoerceArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("constructor expects %d arguments, got %d", len(inputs), len(args))
	}

	out := make([]any, len(args))
	for i, arg := range args {
		v, err := coerceArg(inputs[i].Type, arg)
		if err != nil {
			name := inputs[i].Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, inputs[i].Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

func coerceArg(typ abi.Type, arg any) (any, error) {
	s, ok := arg.(string)
	if !ok {
		return arg, nil
	}

	switch typ.T {
	case abi.StringTy:
		return s, nil
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.IntTy, abi.UintTy:
		return coerceInteger(typ, s)
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != typ.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", typ.Size, len(b))
		}
		rv := reflect.New(typ.GetType()).Elem()
		reflect.Copy(rv, reflect.ValueOf(b))
		return rv.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		return coerceList(typ, s)
	default:
		return nil, fmt.Errorf("can't convert %q to %s", s, typ.String())
	}
}

func coerceInteger(typ abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	size := uint(typ.Size)
	if typ.T == abi.UintTy {
		if n.Sign() < 0 || uint(n.BitLen()) > size {
			return nil, fmt.Errorf("%s out of range for uint%d", s, size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), size-1)
		minVal := new(big.Int).Neg(limit)
		maxVal := new(big.Int).Sub(limit, big.NewInt(1))
		if n.Cmp(minVal) < 0 || n.Cmp(maxVal) > 0 {
			return nil, fmt.Errorf("%s out of range for int%d", s, size)
		}
	}

	goType := typ.GetType()
	if goType == bigIntType {
		return n, nil
	}

	rv := reflect.New(goType).Elem()
	if typ.T == abi.UintTy {
		rv.SetUint(n.Uint64())
	} else {
		rv.SetInt(n.Int64())
	}
	return rv.Interface(), nil
}

// coerceList parses a JSON array; each element is converted with the element type
func coerceList(typ abi.Type, s string) (any, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}
	if typ.T == abi.ArrayTy && len(items) != typ.Size {
		return nil, fmt.Errorf("expected %d elements, got %d", typ.Size, len(items))
	}

	var rv reflect.Value
	if typ.T == abi.ArrayTy {
		rv = reflect.New(typ.GetType()).Elem()
	} else {
		rv = reflect.MakeSlice(typ.GetType(), len(items), len(items))
	}

	for i, raw := range items {
		var item string
		if err := json.Unmarshal(raw, &item); err != nil {
			// numbers and bools are taken verbatim
			item = string(raw)
		}
		v, err := coerceArg(*typ.Elem, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		rv.Index(i).Set(reflect.ValueOf(v))
	}
	return rv.Interface(), nil
}
