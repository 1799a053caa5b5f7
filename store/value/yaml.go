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
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ToYAMLNode converts |v| into a yaml node tree. Records become mappings that keep field order.
func ToYAMLNode(v Value) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case Null:
		return scalarNode("!!null", "null"), nil
	case Bool:
		return scalarNode("!!bool", strconv.FormatBool(bool(val))), nil
	case Int:
		return scalarNode("!!int", strconv.FormatInt(int64(val), 10)), nil
	case Float:
		f := float64(val)
		switch {
		case math.IsNaN(f):
			return scalarNode("!!float", ".nan"), nil
		case math.IsInf(f, 1):
			return scalarNode("!!float", ".inf"), nil
		case math.IsInf(f, -1):
			return scalarNode("!!float", "-.inf"), nil
		}
		return scalarNode("!!float", val.HumanReadableString()), nil
	case Decimal:
		return scalarNode("!!float", decimal.Decimal(val).String()), nil
	case String:
		return scalarNode("!!str", string(val)), nil
	case Binary:
		return scalarNode("!!binary", base64.StdEncoding.EncodeToString(val)), nil
	case Timestamp:
		return scalarNode("!!timestamp", time.Time(val).Format(time.RFC3339Nano)), nil
	case Record:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range val.fields {
			child, err := ToYAMLNode(f.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, scalarNode("!!str", f.Name), child)
		}
		return n, nil
	case RecordList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, r := range val.records {
			child, err := ToYAMLNode(r)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}

	return nil, fmt.Errorf("cannot encode value of kind %s as yaml", v.Kind().String())
}

// WriteYAML writes the yaml encoding of |v| to |wr|.
func WriteYAML(wr io.Writer, v Value) error {
	n, err := ToYAMLNode(v)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(wr)
	enc.SetIndent(2)

	err = enc.Encode(n)
	if err != nil {
		return err
	}

	return enc.Close()
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

func (r Record) MarshalYAML() (interface{}, error) {
	return ToYAMLNode(r)
}

func (l RecordList) MarshalYAML() (interface{}, error) {
	return ToYAMLNode(l)
}
