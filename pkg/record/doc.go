// Package record implements the structured record format scenekit uses to
// persist geometry: a named element carrying ordered string attributes and
// child elements.
//
// A vector is stored as
//
//	<sunPosition x="1.5" y="0" z="-2.25"/>
//
// and larger objects nest such elements. The package is independent of any
// particular markup library. The same Element tree can be written as XML,
// YAML, CBOR or JSON:
//
//	data, err := record.Marshal(record.FormatYAML, el)
//	el, err := record.Unmarshal(record.FormatFromPath("scene.xml"), data)
//
// # Tolerant Attribute Access
//
// Float, Int and Bool read typed attributes with a default value. A missing
// or malformed attribute never fails: the default is returned and a warning
// is sent to the supplied log.Logger (or log.Default() when nil).
package record
