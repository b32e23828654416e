// Package codec resolves wire codecs for rop.Result from runtime type
// descriptors, for polymorphic contexts where the concrete instantiation is
// only known at runtime.
//
// Highlights:
// - Register: record a statically specialized codec for Result[T, E]
// - Resolve/ResolveFor: look up a codec by reflect.Type or dynamic value
//
// Both descriptors denoting an instantiation (value and pointer) resolve to
// the same codec; unregistered instantiations get a cached reflective
// fallback. The wire format itself lives with the type in pkg/rop.
package codec
