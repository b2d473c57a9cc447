package model

import (
	"github.com/google/uuid"

	"github.com/soocke/signdetect-go/domain/detection"
)

// ResultModel remembers which detection result is currently on screen so the
// results card is only redrawn when a different result arrives.
type ResultModel struct {
	shown   bool
	request uuid.UUID
	label   string
	conf    float64
}

func NewResultModel() *ResultModel { return &ResultModel{} }

// Set records r (nil clears) and reports whether the displayed result changed.
func (m *ResultModel) Set(r *detection.Result) bool {
	if m == nil {
		return false
	}
	if r == nil {
		if !m.shown {
			return false
		}
		*m = ResultModel{}
		return true
	}
	if m.shown && m.request == r.RequestID && m.label == r.Label && m.conf == r.Confidence {
		return false
	}
	m.shown, m.request, m.label, m.conf = true, r.RequestID, r.Label, r.Confidence
	return true
}

// Shown reports whether a result is displayed, returning its label and confidence.
func (m *ResultModel) Shown() (label string, conf float64, ok bool) {
	if m == nil || !m.shown {
		return "", 0, false
	}
	return m.label, m.conf, true
}
