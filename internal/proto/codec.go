package proto

import (
	"fmt"

	gproto "google.golang.org/protobuf/proto"
)

// Codec is a gRPC codec for the messages of this package. Values that are
// regular protobuf messages (for example the gRPC health service types) are
// delegated to the protobuf runtime, so one codec serves the whole server.
//
// Its name is "proto": on the wire it is indistinguishable from the default
// gRPC codec.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		if err := m.validate(); err != nil {
			return nil, err
		}
		return m.appendWire(nil), nil
	case gproto.Message:
		return gproto.Marshal(m)
	}
	return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		m.reset()
		return m.unmarshalWire(data)
	case gproto.Message:
		return gproto.Unmarshal(data, m)
	}
	return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
}
