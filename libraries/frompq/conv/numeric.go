// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conv

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// uint64ToInt64 narrows |v| to int64, failing rather than wrapping when |v| exceeds math.MaxInt64.
func uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, &OverflowError{SourceType: "uint64", TargetType: "int64", Value: strconv.FormatUint(v, 10)}
	}

	return int64(v), nil
}

// floatToDecimal converts a finite float of |bitSize| 32 or 64 to a decimal. A panic from the decimal library for a
// finite input is reported as ErrInternalFault.
func floatToDecimal(f float64, bitSize int) (d decimal.Decimal, err error) {
	srcType := "float64"
	if bitSize == 32 {
		srcType = "float32"
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, &OverflowError{SourceType: srcType, TargetType: "decimal", Value: strconv.FormatFloat(f, 'g', -1, bitSize)}
	}

	defer func() {
		if r := recover(); r != nil {
			err = ErrInternalFault.New(srcType, strconv.FormatFloat(f, 'g', -1, bitSize), r)
		}
	}()

	if bitSize == 32 {
		return decimal.NewFromFloat32(float32(f)), nil
	}

	return decimal.NewFromFloat(f), nil
}

// unscaledToString renders a big-endian two's complement unscaled decimal with |scale| for diagnostics.
func unscaledToString(unscaled []byte, scale int32) string {
	n := new(big.Int).SetBytes(unscaled)
	if len(unscaled) > 0 && unscaled[0]&0x80 != 0 {
		// negative: subtract 2^(8*len)
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(unscaled))))
	}

	return decimal.NewFromBigInt(n, -scale).String()
}
