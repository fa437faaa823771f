package record

import "encoding/json"

func marshalJSON(el *Element) ([]byte, error) {
	data, err := json.MarshalIndent(toWire(el), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func unmarshalJSON(data []byte) (*Element, error) {
	var w wireElement
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(&w), nil
}
