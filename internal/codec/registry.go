package codec

import (
	"fmt"
	"reflect"
	"sync"
)

type entry struct {
	info    TypeInfo
	binding Binding
	array   bool
}

// Registry maps type identifiers to codec pairs and Go value types to the
// identifier they are dumped with.
//
// Thread-safety model:
//   - Bind: safe from any goroutine; writes are serialized
//   - Decode/Encode/Lookup: safe from any goroutine
type Registry struct {
	mu     sync.RWMutex
	byOID  map[OID]entry
	byType map[reflect.Type]entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byOID:  make(map[OID]entry),
		byType: make(map[reflect.Type]entry),
	}
}

// Bind associates b with the resolved type info.
//
// Binding the same pair to the same info again is a no-op. Binding a
// different type to an identifier that is already taken, or the same
// value type to a different identifier, returns a *BindError.
func (r *Registry) Bind(b Binding, info TypeInfo) error {
	if info.OID == 0 {
		return &BindError{Type: b.TypeName(), Message: "oid must be non-zero"}
	}
	if info.ArrayOID == info.OID {
		return &BindError{Type: b.TypeName(), OID: info.OID, Message: "array oid must differ from element oid"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkFree(b, info.OID, info); err != nil {
		return err
	}
	if info.ArrayOID != 0 {
		if err := r.checkFree(b, info.ArrayOID, info); err != nil {
			return err
		}
	}
	if prev, ok := r.byType[b.valueType()]; ok && prev.info != info {
		return &BindError{
			Type:    b.TypeName(),
			OID:     info.OID,
			Message: fmt.Sprintf("already bound to oid %d", prev.info.OID),
		}
	}

	r.byOID[info.OID] = entry{info: info, binding: b}
	if info.ArrayOID != 0 {
		r.byOID[info.ArrayOID] = entry{info: info, binding: b, array: true}
	}
	r.byType[b.valueType()] = entry{info: info, binding: b}
	return nil
}

// checkFree must be called with r.mu held.
func (r *Registry) checkFree(b Binding, oid OID, info TypeInfo) error {
	prev, ok := r.byOID[oid]
	if !ok {
		return nil
	}
	if prev.info == info && prev.binding.TypeName() == b.TypeName() {
		return nil
	}
	return &BindError{
		Type:    b.TypeName(),
		OID:     oid,
		Message: fmt.Sprintf("oid already bound to %s", prev.binding.TypeName()),
	}
}

// Lookup returns the type info bound to oid. oid may be an element or an
// array identifier.
func (r *Registry) Lookup(oid OID) (TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byOID[oid]
	return e.info, ok
}

// Decode parses data with the loader bound to oid. Array identifiers
// decode to a slice of the element type.
func (r *Registry) Decode(oid OID, data []byte) (any, error) {
	r.mu.RLock()
	e, ok := r.byOID[oid]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("decode oid %d: %w", oid, ErrUnknownOID)
	}
	if e.array {
		return e.binding.decodeArray(data)
	}
	return e.binding.decode(data)
}

// Encode renders v with the dumper bound to its Go type and returns the
// identifier to send it with. A slice of a bound type is encoded as an
// array literal when the type has an array identifier.
func (r *Registry) Encode(v any) (OID, []byte, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return 0, nil, fmt.Errorf("encode: no dumper for nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.byType[t]; ok {
		data, _ := e.binding.encode(v)
		return e.info.OID, data, nil
	}
	if t.Kind() == reflect.Slice {
		if e, ok := r.byType[t.Elem()]; ok && e.info.ArrayOID != 0 {
			data, _ := e.binding.encodeArray(v)
			return e.info.ArrayOID, data, nil
		}
	}
	return 0, nil, fmt.Errorf("encode: no dumper for %T", v)
}

// RegisterLtree binds LtreePair to info.
func RegisterLtree(r *Registry, info TypeInfo) error {
	return r.Bind(LtreePair, info)
}

// RegisterLquery binds LqueryPair to info.
func RegisterLquery(r *Registry, info TypeInfo) error {
	return r.Bind(LqueryPair, info)
}
