package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Events are flat maps with integer keys; nothing nests deeper than the
// tagged timestamp.
const eventMaxNesting = 4

// eventEncMode writes canonical events. Timestamps are RFC 3339 strings
// carrying tag 0 so generic CBOR tools show them as times.
var eventEncMode cbor.EncMode

// eventDecMode accepts timestamps with or without tag 0 and skips unknown
// keys, so newer files stay readable.
var eventDecMode cbor.DecMode

func init() {
	var err error

	eventEncMode, err = cbor.EncOptions{
		Sort:    cbor.SortCanonical,
		Time:    cbor.TimeRFC3339Nano,
		TimeTag: cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR encoder mode: %v", err))
	}

	eventDecMode, err = cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyQuiet,
		TimeTag:         cbor.DecTagOptional,
		MaxNestedLevels: eventMaxNesting,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR decoder mode: %v", err))
	}
}

// EncodeEvent encodes an Event to CBOR bytes. The timestamp is stored in UTC.
func EncodeEvent(event Event) ([]byte, error) {
	event.Timestamp = event.Timestamp.UTC()
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes one CBOR event. Bytes after the event are an error.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a CBOR encoder for a stream of events written to w.
// Unlike EncodeEvent it stores timestamps as given.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for a stream of events read from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
