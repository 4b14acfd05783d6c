package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype clients send: application/grpc+json
const CodecName = "json"

// jsonCodec carries the plain Go message structs as JSON. There are no
// generated protos for this service.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// Servers pick the codec by content subtype, so other services on the same
// server keep the proto codec.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// Codec returns the JSON codec used on both ends of the service
func Codec() encoding.Codec {
	return jsonCodec{}
}

// ClientCodecOption makes every call on a client connection use the JSON
// content subtype. Do not share such a connection with proto services.
func ClientCodecOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName))
}
