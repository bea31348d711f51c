package codec

import (
	"strings"
)

// Record is an ordered mapping from field name to Value. Decode produces one
// with insertion order equal to the spec's field order; callers build one to
// encode. Records are transient: created and discarded per call, never
// retained or shared by the codec.
type Record struct {
	names  []string
	index  map[string]int
	values []Value
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// Set stores a value under name, appending to the field order on first
// insertion and replacing in place afterwards. It returns the record for
// chaining:
//
//	rec := codec.NewRecord().
//	    Set("id", codec.UintValue(2570)).
//	    Set("flag", codec.UintValue(255)).
//	    Set("value", codec.IntValue(300))
func (r *Record) Set(name string, v Value) *Record {
	if i, ok := r.index[name]; ok {
		r.values[i] = v
		return r
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	r.values = append(r.values, v)
	return r
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// Equal reports whether both records hold the same fields in the same order
// with equal values (floats by exact bit pattern).
func (r *Record) Equal(o *Record) bool {
	if r.Len() != o.Len() {
		return false
	}
	for i, name := range r.names {
		if o.names[i] != name {
			return false
		}
		if !r.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// String renders the record for logs and test failures, preserving field
// order.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.values[i].String())
	}
	b.WriteByte('}')
	return b.String()
}
