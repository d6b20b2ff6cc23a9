package pmtable

// ArrayMode selects how strictly a candidate window must match its
// per-core value range.
type ArrayMode string

const (
	// ModeStrict requires every value in range plus a bounded mean and
	// spread. Temperatures and power cluster tightly across cores under
	// uniform load, so loose windows are false positives.
	ModeStrict ArrayMode = "strict"

	// ModeTolerant allows a few out-of-range values and applies no
	// mean or spread constraint. Idle cores report frequencies far from
	// the boosted ones, so outliers are expected in a true array.
	ModeTolerant ArrayMode = "tolerant"
)

// ArrayProfile configures one array scan. Value is the per-core
// predicate; Mean and MaxSpread apply only in strict mode, Outliers
// only in tolerant mode.
type ArrayProfile struct {
	Mode      ArrayMode
	Value     Range
	Mean      Range
	MaxSpread float64
	Outliers  int
}

// ArrayCandidate is a window of consecutive floats that matched an
// array profile at some base offset.
type ArrayCandidate struct {
	Base   int
	Values []float32
	Mean   float64
	Spread float64
}

// FindArrays scans every aligned base offset for windows of count
// consecutive floats matching the profile, in ascending base order.
// Overlapping windows are reported as-is: adjacent candidates 4 bytes
// apart are evidence about where the true array starts, and pruning
// them is left to the reader.
func FindArrays(table []byte, count int, p ArrayProfile) []ArrayCandidate {
	if count <= 0 {
		return nil
	}

	span := count * 4
	var candidates []ArrayCandidate
	for base := 0; base+span <= len(table); base += 4 {
		values := make([]float32, count)
		for i := range values {
			values[i], _ = ReadFloat32(table, base+i*4)
		}
		if c, ok := matchWindow(base, values, p); ok {
			candidates = append(candidates, c)
		}
	}

	return candidates
}

func matchWindow(base int, values []float32, p ArrayProfile) (ArrayCandidate, bool) {
	inRange := 0
	sum := 0.0
	minV := float64(values[0])
	maxV := float64(values[0])
	for _, v := range values {
		f := float64(v)
		if p.Value.Contains(f) {
			inRange++
		}
		sum += f
		if f < minV {
			minV = f
		}
		if f > maxV {
			maxV = f
		}
	}

	mean := sum / float64(len(values))
	spread := maxV - minV

	switch p.Mode {
	case ModeTolerant:
		if inRange < len(values)-p.Outliers {
			return ArrayCandidate{}, false
		}
	default:
		if inRange < len(values) {
			return ArrayCandidate{}, false
		}
		if !p.Mean.Contains(mean) {
			return ArrayCandidate{}, false
		}
		if spread >= p.MaxSpread {
			return ArrayCandidate{}, false
		}
	}

	return ArrayCandidate{
		Base:   base,
		Values: values,
		Mean:   mean,
		Spread: spread,
	}, true
}
