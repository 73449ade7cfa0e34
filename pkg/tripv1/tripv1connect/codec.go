// Package tripv1connect wires the tripsplit.v1 messages to Connect handlers
// and clients. It follows the layout of protoc-gen-connect-go output, with a
// JSON codec in place of protobuf since the messages are plain structs.
package tripv1connect

import (
	"encoding/json"
	"fmt"
)

// JSONCodec marshals messages with encoding/json. It registers under the
// name "json", replacing Connect's protojson codec, so requests use the
// application/json content type.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal into %T: %w", msg, err)
	}
	return nil
}
