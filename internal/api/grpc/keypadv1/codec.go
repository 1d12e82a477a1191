package keypadv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName — content-subtype кодека: клиент шлёт "application/grpc+json".
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec — кодек gRPC поверх encoding/json.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
