package arctext

import "github.com/gogpu/arctext/metrics"

// stubProvider measures with fixed per-rune em widths plus optional pair
// kerning, scaled by the descriptor size. Lets layout tests run without
// a real rendering surface.
type stubProvider struct {
	widths map[rune]float64
	kern   map[string]float64
}

func (p stubProvider) MeasureText(d metrics.Descriptor, s string) float64 {
	runes := []rune(s)
	var w float64
	for i, r := range runes {
		cw, ok := p.widths[r]
		if !ok {
			cw = 0.6
		}
		w += cw
		if i > 0 {
			w += p.kern[string(runes[i-1])+string(r)]
		}
	}
	return w * d.Size
}

func newStub() stubProvider {
	return stubProvider{
		widths: map[rune]float64{
			'A': 0.7, 'B': 0.65, 'V': 0.7, 'i': 0.3,
		},
		kern: map[string]float64{
			"AV": -0.1,
		},
	}
}
