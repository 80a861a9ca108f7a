package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/unit"
)

// document is the JSON form of a Quantity:
//
//	{"quantity":"Length","unit":"Meter","value":2}
type document struct {
	Quantity string    `json:"quantity"`
	Unit     string    `json:"unit"`
	Value    jsonFloat `json:"value"`
}

// jsonFloat is a float64 that writes NaN and the infinities as the strings
// "NaN", "+Inf" and "-Inf", which JSON numbers cannot express.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.AppendQuote(nil, strconv.FormatFloat(v, 'g', -1, 64)), nil
	}

	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		switch s {
		case "NaN":
			*f = jsonFloat(math.NaN())
		case "+Inf", "Inf":
			*f = jsonFloat(math.Inf(1))
		case "-Inf":
			*f = jsonFloat(math.Inf(-1))
		default:
			return fmt.Errorf("value %q is not a number", s)
		}

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)

	return nil
}

func marshalUnit(u unit.Unit) ([]byte, error) {
	d := u.Descriptor()

	return json.Marshal(document{Quantity: d.Dimension.String(), Unit: d.Name, Value: jsonFloat(u.Value())})
}

// Marshal encodes q as {"quantity":...,"unit":...,"value":...}. A NaN or
// infinite value is written as the string "NaN", "+Inf" or "-Inf".
func Marshal(q Quantity) ([]byte, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil quantity", errs.ErrInvalidJSON)
	}

	return marshalUnit(q.Unit())
}

// Unmarshal decodes a document written by Marshal using the default registry.
func Unmarshal(data []byte) (Quantity, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}

	return r.Unmarshal(data)
}

// Unmarshal decodes a document written by Marshal.
//
// The unit field accepts any token of the registry. The quantity field may
// be omitted; when present it must name the quantity of the unit. The value
// field is a number or one of the strings "NaN", "+Inf" and "-Inf".
//
// Returns:
//   - Quantity: the decoded value
//   - error: errs.ErrInvalidJSON for malformed documents, errs.ErrUnknownUnit
//     for an unknown unit, errs.ErrQuantityMismatch when the quantity field
//     disagrees with the unit
func (r *Registry) Unmarshal(data []byte) (Quantity, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidJSON, err)
	}
	if doc.Unit == "" {
		return nil, fmt.Errorf("%w: missing unit", errs.ErrInvalidJSON)
	}

	q, err := r.Lookup(doc.Unit)
	if err != nil {
		return nil, err
	}

	if doc.Quantity != "" {
		d, err := unit.ParseDimension(doc.Quantity)
		if err != nil {
			return nil, err
		}
		if d != q.Dimension() {
			return nil, fmt.Errorf("%w: unit %s measures %s, not %s", errs.ErrQuantityMismatch, doc.Unit, q.Dimension(), d)
		}
	}

	return q.WithValue(float64(doc.Value)), nil
}
