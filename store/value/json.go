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

package value

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// MarshalJSON encodes |v| as JSON. Records become objects whose keys are emitted in field order, Binary values become
// base64 strings, Timestamps become RFC 3339 strings, and non-finite floats become the strings "NaN", "inf" and
// "-inf" since JSON has no literal for them.
func MarshalJSON(v Value) ([]byte, error) {
	return appendJSON(nil, v)
}

// WriteJSON writes the JSON encoding of |v| to |wr|, indenting nested values when |indent| is non-empty.
func WriteJSON(wr io.Writer, v Value, indent string) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}

	if indent != "" {
		var buf bytes.Buffer
		err = json.Indent(&buf, data, "", indent)
		if err != nil {
			return err
		}
		data = buf.Bytes()
	}

	_, err = wr.Write(append(data, '\n'))
	return err
}

func appendJSON(dst []byte, v Value) ([]byte, error) {
	if v == nil {
		return append(dst, "null"...), nil
	}

	switch val := v.(type) {
	case Null:
		return append(dst, "null"...), nil
	case Bool:
		return strconv.AppendBool(dst, bool(val)), nil
	case Int:
		return strconv.AppendInt(dst, int64(val), 10), nil
	case Float:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return appendJSONString(dst, val.HumanReadableString())
		}
		return strconv.AppendFloat(dst, f, 'g', -1, 64), nil
	case Decimal:
		return append(dst, decimal.Decimal(val).String()...), nil
	case String:
		return appendJSONString(dst, string(val))
	case Binary:
		return appendJSONString(dst, base64.StdEncoding.EncodeToString(val))
	case Timestamp:
		return appendJSONString(dst, time.Time(val).Format(time.RFC3339Nano))
	case Record:
		dst = append(dst, '{')
		for i, f := range val.fields {
			if i > 0 {
				dst = append(dst, ',')
			}

			var err error
			dst, err = appendJSONString(dst, f.Name)
			if err != nil {
				return nil, err
			}

			dst = append(dst, ':')
			dst, err = appendJSON(dst, f.Value)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case RecordList:
		dst = append(dst, '[')
		for i, r := range val.records {
			if i > 0 {
				dst = append(dst, ',')
			}

			var err error
			dst, err = appendJSON(dst, r)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	}

	return nil, fmt.Errorf("cannot encode value of kind %s as json", v.Kind().String())
}

func appendJSONString(dst []byte, s string) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	return append(dst, data...), nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	return MarshalJSON(r)
}

func (l RecordList) MarshalJSON() ([]byte, error) {
	return MarshalJSON(l)
}
