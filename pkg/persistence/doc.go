// Package persistence saves and restores scenekit state documents.
//
// A StateStore writes one record.Element tree to a file, choosing XML, YAML,
// CBOR or JSON from the file extension. SaveVectors and LoadVectors cover the
// common case of a set of named geom.Vec values.
package persistence
