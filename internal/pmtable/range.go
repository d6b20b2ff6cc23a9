package pmtable

// Range is a named open interval of plausible values for one physical
// quantity. Bounds are exclusive on both ends so that boundary noise
// (exactly 95.0 in a 30-95 temperature range) never matches.
type Range struct {
	Name string
	Low  float64
	High float64
}

// Contains reports whether v lies strictly inside the range. NaN and
// infinities fail the comparison naturally, so non-finite table values
// never classify as any quantity.
func (r Range) Contains(v float64) bool {
	return r.Low < v && v < r.High
}

// Field is a decoded value at a 4-byte-aligned table offset.
type Field struct {
	Offset int
	Value  float32
}

// Classify scans every 4-byte-aligned offset and returns the fields
// whose decoded value falls inside r, in ascending offset order.
// Ranking, if the quantity needs one, is a separate step.
func Classify(table []byte, r Range) []Field {
	var fields []Field
	for offset := 0; offset+4 <= len(table); offset += 4 {
		v, ok := ReadFloat32(table, offset)
		if !ok {
			break
		}
		if r.Contains(float64(v)) {
			fields = append(fields, Field{Offset: offset, Value: v})
		}
	}

	return fields
}
