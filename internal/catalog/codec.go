package catalog

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is the call content-subtype shared with the catalog engine.
const codecName = "json"

// jsonCodec marshals call payloads with encoding/json. The catalog
// service's schema file is an external artifact shared with the engine, so
// the gateway speaks the json content-subtype instead of vendoring
// generated stubs.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
