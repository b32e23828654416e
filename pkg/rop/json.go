package rop

import (
	"bytes"
	"encoding/json"

	"github.com/zeebo/errs"
)

// Wire format: {"$result":"ok","value":<T>} or {"$result":"err","error":<E>}.
// The discriminator is always written first and is required on decode.
const (
	discriminatorField = "$result"

	okTag  = "ok"
	errTag = "err"

	valueField = "value"
	errorField = "error"
)

// ErrDecode classifies malformed wire documents. A document that fails to
// decode never yields an Err value; it means no Result could be
// reconstructed at all.
var ErrDecode = errs.Class("rop: decode")

func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"` + discriminatorField + `":`)
	if r.ok {
		buf.WriteString(`"` + okTag + `","` + valueField + `":`)
		payload, err := json.Marshal(r.value)
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	} else {
		buf.WriteString(`"` + errTag + `","` + errorField + `":`)
		payload, err := json.Marshal(r.err)
		if err != nil {
			return nil, err
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrDecode.Wrap(err)
	}

	rawTag, found := doc[discriminatorField]
	if !found {
		return ErrDecode.New("missing %q field", discriminatorField)
	}

	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return ErrDecode.Wrap(err)
	}

	// Unrecognized top-level fields are skipped; a missing payload field
	// decodes as the payload type's zero value.
	switch tag {
	case okTag:
		var value T
		if raw, ok := doc[valueField]; ok {
			if err := json.Unmarshal(raw, &value); err != nil {
				return ErrDecode.Wrap(err)
			}
		}
		*r = Ok[T, E](value)
		return nil

	case errTag:
		var e E
		if raw, ok := doc[errorField]; ok {
			if err := json.Unmarshal(raw, &e); err != nil {
				return ErrDecode.Wrap(err)
			}
		}
		*r = Err[T, E](e)
		return nil

	default:
		return ErrDecode.New("unknown %q value %q", discriminatorField, tag)
	}
}
