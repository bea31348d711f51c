package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/binwire/binconv"
	"github.com/aalemi-dev/binwire/observability"
	"github.com/aalemi-dev/binwire/struct_registry"
)

type captureObserver struct {
	contexts []observability.OperationContext
}

func (c *captureObserver) ObserveOperation(ctx observability.OperationContext) {
	c.contexts = append(c.contexts, ctx)
}

type captureLogger struct {
	infoCalled  bool
	warnCalled  bool
	errorCalled bool
}

func (c *captureLogger) InfoWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.infoCalled = true
}
func (c *captureLogger) WarnWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.warnCalled = true
}
func (c *captureLogger) ErrorWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.errorCalled = true
}

// newTestClient builds a client over a store pre-loaded with the trigger
// status schema.
func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()

	store := struct_registry.NewStore(struct_registry.Config{})
	_, err := store.Register("trigger_status", []struct_registry.FieldSpec{
		{Name: "id", Type: struct_registry.FieldUint16, Endianness: struct_registry.Big()},
		{Name: "flag", Type: struct_registry.FieldUint8},
		{Name: "value", Type: struct_registry.FieldInt32},
	}, binconv.LittleEndian)
	require.NoError(t, err)

	cfg.Registry = store
	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresRegistry(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_RoundTrip(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{})
	ctx := context.Background()

	record, err := client.DecodeHex(ctx, "trigger_status", "0A0AFF2C010000")
	require.NoError(t, err)

	encoded, err := client.EncodeHex(ctx, "trigger_status", record)
	require.NoError(t, err)
	assert.Equal(t, "0a0aff2c010000", encoded)
}

func TestClient_UnknownStruct(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{})
	ctx := context.Background()

	_, err := client.DecodeHex(ctx, "nope", "00")
	assert.ErrorIs(t, err, struct_registry.ErrNotFound)

	_, err = client.Encode(ctx, "nope", NewRecord())
	assert.ErrorIs(t, err, struct_registry.ErrNotFound)
}

func TestClient_Observed(t *testing.T) {
	t.Parallel()

	observer := &captureObserver{}
	logger := &captureLogger{}
	client := newTestClient(t, Config{Observer: observer, Logger: logger})
	ctx := context.Background()

	record, err := client.Decode(ctx, "trigger_status", []byte{0x0A, 0x0A, 0xFF, 0x2C, 0x01, 0x00, 0x00})
	require.NoError(t, err)

	require.Len(t, observer.contexts, 1)
	op := observer.contexts[0]
	assert.Equal(t, "codec", op.Component)
	assert.Equal(t, "decode", op.Operation)
	assert.Equal(t, "trigger_status", op.Resource)
	assert.Equal(t, int64(7), op.Size)
	assert.NoError(t, op.Error)
	assert.False(t, logger.errorCalled)

	_, err = client.Encode(ctx, "trigger_status", record)
	require.NoError(t, err)
	require.Len(t, observer.contexts, 2)
	assert.Equal(t, "encode", observer.contexts[1].Operation)

	_, err = client.Decode(ctx, "trigger_status", []byte{0x00})
	require.Error(t, err)
	require.Len(t, observer.contexts, 3)
	assert.Error(t, observer.contexts[2].Error)
	assert.True(t, logger.errorCalled)
}

func TestClient_NilObserverAndLogger(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{})

	// Failures with no observer or logger wired must not panic.
	_, err := client.Decode(context.Background(), "trigger_status", nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFXModule(t *testing.T) {
	var client *Client
	var iface Codec

	app := fxtest.New(t,
		struct_registry.FXModule,
		FXModule,
		fx.Invoke(func(store *struct_registry.Store) error {
			_, err := store.Register("trigger_status", []struct_registry.FieldSpec{
				{Name: "id", Type: struct_registry.FieldUint16, Endianness: struct_registry.Big()},
				{Name: "flag", Type: struct_registry.FieldUint8},
				{Name: "value", Type: struct_registry.FieldInt32},
			}, binconv.LittleEndian)
			return err
		}),
		fx.Populate(&client, &iface),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, client)
	require.NotNil(t, iface)

	record, err := iface.DecodeHex(context.Background(), "trigger_status", "0ic")
	assert.ErrorIs(t, err, binconv.ErrInvalidHex)
	assert.Nil(t, record)

	record, err = iface.DecodeHex(context.Background(), "trigger_status", "0a0aff2c010000")
	require.NoError(t, err)
	assert.Equal(t, 3, record.Len())
}
