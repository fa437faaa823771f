package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/scenekit/scenekit-go/pkg/log"
)

const component = "record"

// Float returns the named attribute parsed as a float64.
//
// If el is nil, the attribute is missing, or its text is not a finite decimal
// number, def is returned and a warning naming the attribute is sent to
// logger (log.Default() when nil).
func Float(el *Element, name string, def float64, logger log.Logger) float64 {
	text, ok := lookup(el, name, "Float", logger)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		log.Warn(logger, log.Event{
			Component: component,
			Operation: "Float",
			Attribute: name,
			Value:     text,
			Message:   "attribute of " + el.Name + " is not a number, using default " + FormatFloat(def),
		})
		return def
	}
	return v
}

// Int returns the named attribute parsed as a base-10 integer, with the same
// default-and-warn policy as Float.
func Int(el *Element, name string, def int, logger log.Logger) int {
	text, ok := lookup(el, name, "Int", logger)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		log.Warn(logger, log.Event{
			Component: component,
			Operation: "Int",
			Attribute: name,
			Value:     text,
			Message:   "attribute of " + el.Name + " is not an integer, using default " + strconv.Itoa(def),
		})
		return def
	}
	return v
}

// Bool returns the named attribute as a boolean. Only "true" and "false"
// (any case) are accepted; anything else yields def and a warning.
func Bool(el *Element, name string, def bool, logger log.Logger) bool {
	text, ok := lookup(el, name, "Bool", logger)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true":
		return true
	case "false":
		return false
	}
	log.Warn(logger, log.Event{
		Component: component,
		Operation: "Bool",
		Attribute: name,
		Value:     text,
		Message:   "attribute of " + el.Name + " is not true or false, using default " + strconv.FormatBool(def),
	})
	return def
}

func lookup(el *Element, name, op string, logger log.Logger) (string, bool) {
	if el == nil {
		log.Warn(logger, log.Event{
			Component: component,
			Operation: op,
			Attribute: name,
			Message:   "no element to read attribute from",
		})
		return "", false
	}
	text, ok := el.Attr(name)
	if !ok {
		log.Warn(logger, log.Event{
			Component: component,
			Operation: op,
			Attribute: name,
			Message:   "attribute missing in " + el.Name,
		})
	}
	return text, ok
}

// FormatFloat renders f as the shortest decimal text that parses back to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// SetFloat writes f as decimal text.
func (e *Element) SetFloat(name string, f float64) {
	e.SetAttr(name, FormatFloat(f))
}

// SetInt writes i as decimal text.
func (e *Element) SetInt(name string, i int) {
	e.SetAttr(name, strconv.Itoa(i))
}

// SetBool writes b as "true" or "false".
func (e *Element) SetBool(name string, b bool) {
	e.SetAttr(name, strconv.FormatBool(b))
}
