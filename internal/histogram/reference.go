package histogram

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Reference is a histogram dumped by an external program together with the
// number of int32 values the dump actually held.
type Reference struct {
	Counts  Counts
	Entries int
}

// Resized reports whether the dump had to be truncated or zero-padded.
func (r *Reference) Resized() bool {
	return r.Entries != Bins
}

// Resize forces vals to exactly Bins entries, truncating or zero-padding.
func Resize(vals []int32) Counts {
	var c Counts
	for i := 0; i < len(vals) && i < Bins; i++ {
		c[i] = int64(vals[i])
	}
	return c
}

// DecodeInt32s interprets data as native-endian int32 values. A trailing
// partial value is ignored.
func DecodeInt32s(data []byte) []int32 {
	vals := make([]int32, len(data)/4)
	// Reading from a bytes.Reader sized to whole words cannot fail.
	_ = binary.Read(bytes.NewReader(data[:len(vals)*4]), binary.NativeEndian, vals)
	return vals
}

// ReadReference reads a whole reference dump from r.
func ReadReference(r io.Reader) (*Reference, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference histogram: %w", err)
	}
	vals := DecodeInt32s(data)
	return &Reference{Counts: Resize(vals), Entries: len(vals)}, nil
}

// LoadReference reads the reference dump at filepath.
func LoadReference(filepath string) (*Reference, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference histogram: %w", err)
	}
	defer file.Close()
	return ReadReference(file)
}
