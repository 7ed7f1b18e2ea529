// Package codec converts ltree values to and from their text wire form.
//
// Each value type has a Pair: a Dumper that renders the canonical text as
// UTF-8 bytes, and a Loader that decodes UTF-8 bytes and parses them. Only
// the text format exists; there is no binary format.
//
// The type identifier a Pair is bound to is resolved elsewhere (typically
// by looking the type name up in a database catalog) and handed to
// Registry.Bind. Binding is one-time and idempotent per identifier:
//
//	info, err := catalog.FetchType(ctx, "ltree")
//	if err != nil { ... }
//	if err := codec.RegisterLtree(reg, info); err != nil { ... }
//	v, err := reg.Decode(info.OID, data)
//
// Bind happens-before any Decode or Encode that observes the binding, so a
// Registry can be shared by concurrent callers once populated.
package codec
