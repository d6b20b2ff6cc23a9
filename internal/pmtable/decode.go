// Package pmtable locates candidate field offsets inside a raw SMU PM
// table. The table layout is undocumented; everything here works from
// physically plausible value ranges and per-core array patterns rather
// than a schema.
package pmtable

import (
	"encoding/binary"
	"math"
)

// ReadFloat32 interprets the 4 bytes at offset as a little-endian
// IEEE-754 float. The second return is false when the read would run
// past the end of the table; scans probe near the end by construction,
// so a short read is not an error.
func ReadFloat32(table []byte, offset int) (float32, bool) {
	if offset < 0 || offset+4 > len(table) {
		return 0, false
	}

	bits := binary.LittleEndian.Uint32(table[offset : offset+4])

	return math.Float32frombits(bits), true
}
