package codec

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/zeebo/errs"

	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
)

// ErrCodec classifies dispatch failures: a value handed to a codec that does
// not match the result type it was specialized to.
var ErrCodec = errs.Class("rop: codec")

// Codec encodes and decodes one Result[T, E] instantiation behind the any
// type, for callers that only hold a runtime type descriptor.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (any, error)
}

var registry sync.Map // reflect.Type -> Codec

var resultPkgPath = reflect.TypeOf((*rop.Result[rop.Unit, error])(nil)).Elem().PkgPath()

// Register records a codec for Result[T, E] under both runtime descriptors
// that denote it: the value type and the pointer type. Go's struct rendering
// collapses the two sealed variants into one type, so these two descriptors
// are the pair that must resolve to the same codec.
func Register[T, E any]() {
	c := resultCodec[T, E]{}
	rt := reflect.TypeOf((*rop.Result[T, E])(nil)).Elem()
	registry.Store(rt, Codec(c))
	registry.Store(reflect.PointerTo(rt), Codec(c))
}

// Resolve returns the codec for a runtime type descriptor, or false when the
// descriptor does not denote a Result. Unregistered Result instantiations
// fall back to a reflective codec, constructed once and cached.
func Resolve(rt reflect.Type) (Codec, bool) {
	if c, ok := registry.Load(rt); ok {
		return c.(Codec), true
	}

	if !isResultType(rt) {
		return nil, false
	}

	elem := rt
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	c, _ := registry.LoadOrStore(elem, Codec(reflectCodec{rt: elem}))
	registry.LoadOrStore(reflect.PointerTo(elem), c)
	return c.(Codec), true
}

// ResolveFor resolves the codec for the dynamic type of v.
func ResolveFor(v any) (Codec, bool) {
	return Resolve(reflect.TypeOf(v))
}

func isResultType(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt.PkgPath() == resultPkgPath && strings.HasPrefix(rt.Name(), "Result[")
}

// resultCodec is the statically specialized codec produced by Register.
type resultCodec[T, E any] struct{}

func (resultCodec[T, E]) Encode(v any) ([]byte, error) {
	switch r := v.(type) {
	case rop.Result[T, E]:
		return json.Marshal(r)
	case *rop.Result[T, E]:
		return json.Marshal(r)
	}
	return nil, ErrCodec.New("%T is not the registered result type", v)
}

func (resultCodec[T, E]) Decode(data []byte) (any, error) {
	var r rop.Result[T, E]
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// reflectCodec serves Result instantiations nobody registered, driving
// encoding/json through reflection instead of a compile-time type.
type reflectCodec struct {
	rt reflect.Type
}

func (c reflectCodec) Encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Type() != c.rt {
		return nil, ErrCodec.New("%T does not match resolved type %v", v, c.rt)
	}
	return json.Marshal(rv.Interface())
}

func (c reflectCodec) Decode(data []byte) (any, error) {
	rv := reflect.New(c.rt)
	if err := json.Unmarshal(data, rv.Interface()); err != nil {
		return nil, err
	}
	return rv.Elem().Interface(), nil
}
