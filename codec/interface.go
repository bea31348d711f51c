package codec

import "context"

// Codec is the registry-backed encode/decode contract injected into
// instrument wrapper code. Struct names refer to schemas registered during
// the initialization phase; all methods are synchronous and side-effect-free
// beyond optional telemetry.
//
// This interface is implemented by the concrete *Client type.
type Codec interface {
	// Decode converts a raw payload into an ordered record using the named
	// struct's layout.
	Decode(ctx context.Context, structName string, payload []byte) (*Record, error)

	// DecodeHex converts a hex-encoded payload into an ordered record.
	DecodeHex(ctx context.Context, structName string, payload string) (*Record, error)

	// Encode converts a record into the named struct's packed byte layout.
	Encode(ctx context.Context, structName string, values *Record) ([]byte, error)

	// EncodeHex encodes a record and renders the canonical lowercase hex
	// string ready to transmit.
	EncodeHex(ctx context.Context, structName string, values *Record) (string, error)
}
