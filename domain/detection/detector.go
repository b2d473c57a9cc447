package detection

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/soocke/signdetect-go/config"
)

// Default confidence range, [min, max).
const (
	DefaultMinConfidence = 0.70
	DefaultMaxConfidence = 0.95
)

// SimulatedDetector returns a label drawn uniformly from a fixed set with a
// confidence drawn uniformly from [min, max). The two draws are independent.
// Mode is not consulted.
type SimulatedDetector struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	labels []string
	min    float64
	max    float64
}

// NewSimulatedDetector builds a detector. Empty labels fall back to config.DefaultLabels;
// an invalid range falls back to the default one. A nil rnd is seeded randomly.
func NewSimulatedDetector(labels []string, minConf, maxConf float64, rnd *rand.Rand) *SimulatedDetector {
	if len(labels) == 0 {
		labels = config.DefaultLabels
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	d := &SimulatedDetector{rnd: rnd, labels: append([]string(nil), labels...)}
	d.SetConfidenceRange(minConf, maxConf)
	return d
}

// SetConfidenceRange replaces the confidence range used by later draws.
func (d *SimulatedDetector) SetConfidenceRange(minConf, maxConf float64) {
	if !(minConf >= 0 && maxConf <= 1 && minConf < maxConf) {
		minConf, maxConf = DefaultMinConfidence, DefaultMaxConfidence
	}
	d.mu.Lock()
	d.min, d.max = minConf, maxConf
	d.mu.Unlock()
}

// ConfidenceRange returns the current [min, max) range.
func (d *SimulatedDetector) ConfidenceRange() (float64, float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.min, d.max
}

// Labels returns a copy of the label set.
func (d *SimulatedDetector) Labels() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.labels...)
}

// SetLabels replaces the label set. An empty set is ignored.
func (d *SimulatedDetector) SetLabels(labels []string) {
	if len(labels) == 0 {
		return
	}
	d.mu.Lock()
	d.labels = append([]string(nil), labels...)
	d.mu.Unlock()
}

// Detect draws a result. It fails only when ctx is already done.
func (d *SimulatedDetector) Detect(ctx context.Context, mode Mode, requestID uuid.UUID) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	d.mu.Lock()
	label := d.labels[d.rnd.Intn(len(d.labels))]
	conf := d.min + d.rnd.Float64()*(d.max-d.min)
	if conf >= d.max {
		conf = math.Nextafter(d.max, d.min)
	}
	d.mu.Unlock()
	return Result{Label: label, Confidence: conf, Mode: mode, RequestID: requestID}, nil
}

var _ Detector = (*SimulatedDetector)(nil)
