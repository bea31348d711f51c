package struct_registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/binwire/binconv"
)

const schemaDoc = `
structs:
  - name: trigger_status
    endianness: little
    fields:
      - name: id
        type: uint16
        endianness: big
      - name: flag
        type: uint8
      - name: value
        type: int32
  - name: waveform_header
    endianness: big
    fields:
      - name: points
        type: uint32
      - name: x_increment
        type: float64
      - name: channel_label
        type: text
        width: 8
  - name: capture_frame
    fields:
      - name: channel
        type: uint8
      - name: status
        type: struct
        struct: trigger_status
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	store := NewStore(Config{})

	require.NoError(t, store.LoadYAML([]byte(schemaDoc)))
	assert.Equal(t, []string{"capture_frame", "trigger_status", "waveform_header"}, store.Names())

	trigger, err := store.Lookup("trigger_status")
	require.NoError(t, err)
	assert.Equal(t, 7, trigger.TotalLength())
	assert.Equal(t, binconv.BigEndian, trigger.Field(0).Endianness)
	assert.Equal(t, binconv.LittleEndian, trigger.Field(2).Endianness)

	header, err := store.Lookup("waveform_header")
	require.NoError(t, err)
	assert.Equal(t, 4+8+8, header.TotalLength())
	label, ok := header.FieldByName("channel_label")
	require.True(t, ok)
	assert.Equal(t, FieldText, label.Type)
	assert.Equal(t, 8, label.Width)
	assert.Equal(t, binconv.BigEndian, label.Endianness)

	frame, err := store.Lookup("capture_frame")
	require.NoError(t, err)
	assert.Equal(t, 1+7, frame.TotalLength())
	status, ok := frame.FieldByName("status")
	require.True(t, ok)
	assert.Equal(t, FieldStruct, status.Type)
	assert.Same(t, trigger, status.Struct)
}

func TestLoadYAML_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "unknown field type",
			doc: `
structs:
  - name: bad
    fields:
      - name: x
        type: uint24
`,
			wantErr: ErrInvalidSpec,
		},
		{
			name: "unknown endianness",
			doc: `
structs:
  - name: bad
    endianness: middle
    fields:
      - name: x
        type: uint8
`,
			wantErr: ErrInvalidSpec,
		},
		{
			name: "text without width",
			doc: `
structs:
  - name: bad
    fields:
      - name: label
        type: text
`,
			wantErr: ErrInvalidSpec,
		},
		{
			name: "duplicate struct",
			doc: `
structs:
  - name: twice
    fields:
      - name: x
        type: uint8
  - name: twice
    fields:
      - name: x
        type: uint8
`,
			wantErr: ErrDuplicateName,
		},
		{
			name: "struct reference declared later in the document",
			doc: `
structs:
  - name: bad
    fields:
      - name: inner
        type: struct
        struct: later
  - name: later
    fields:
      - name: x
        type: uint8
`,
			wantErr: ErrInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(Config{})
			err := store.LoadYAML([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		store := NewStore(Config{})
		assert.Error(t, store.LoadYAML([]byte("structs: [name: {")))
	})
}

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schemas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schemaDoc), 0o644))

	store := NewStore(Config{})
	require.NoError(t, store.LoadYAMLFile(path))
	assert.Len(t, store.Names(), 3)

	assert.Error(t, store.LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
