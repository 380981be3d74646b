package hazard

import (
	"sort"

	"github.com/vovakirdan/dark-seas/internal/config"
)

// Curve maps impact speed (m/s) to a damage factor. Results are clamped to [0, 1] by callers.
type Curve interface {
	Evaluate(x float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(float64) float64

func (f CurveFunc) Evaluate(x float64) float64 { return f(x) }

// LinearCurve returns x / fullAt, reaching 1 at fullAt m/s.
func LinearCurve(fullAt float64) Curve {
	if fullAt <= 0 {
		fullAt = 1
	}
	return CurveFunc(func(x float64) float64 { return x / fullAt })
}

// DefaultCurve is speed / 10.
var DefaultCurve = LinearCurve(10)

// KeyframeCurve interpolates linearly between keys and holds the end values
// outside their range.
type KeyframeCurve struct {
	keys []config.CurveKey
}

// NewKeyframeCurve builds a curve from configured keys. Keys are sorted by time.
// An empty key list yields nil so callers fall back to DefaultCurve.
func NewKeyframeCurve(keys []config.CurveKey) Curve {
	if len(keys) == 0 {
		return nil
	}
	k := append([]config.CurveKey(nil), keys...)
	sort.SliceStable(k, func(a, b int) bool { return k[a].Time < k[b].Time })
	return &KeyframeCurve{keys: k}
}

// Evaluate returns the curve value at x.
func (c *KeyframeCurve) Evaluate(x float64) float64 {
	keys := c.keys
	if x <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if x >= last.Time {
		return last.Value
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > x })
	a, b := keys[i-1], keys[i]
	span := b.Time - a.Time
	if span == 0 {
		return b.Value
	}
	t := (x - a.Time) / span
	return a.Value + (b.Value-a.Value)*t
}
