package presenter

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/soocke/signdetect-go/domain/detection"
)

// ModeView shows the description of the selected processing mode.
type ModeView interface {
	SetModeDescription(string)
}

// ModePresenter maps combobox selections onto the session's processing mode.
type ModePresenter struct {
	control detection.ModeControl
	view    ModeView
	logger  *slog.Logger
}

func NewModePresenter(control detection.ModeControl, view ModeView, logger *slog.Logger) *ModePresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ModePresenter{control: control, view: view, logger: logger}
}

// ModeNames lists the display names of all modes in combobox order.
func ModeNames() []string {
	return lo.Map(detection.Modes, func(m detection.Mode, _ int) string { return m.String() })
}

// Select applies the mode with the given display name.
func (p *ModePresenter) Select(name string) error {
	if p == nil || p.control == nil {
		return nil
	}
	m, err := detection.ParseMode(name)
	if err != nil {
		p.logger.Warn("mode selection rejected", "name", name)
		return errors.Wrapf(err, "select mode %q", name)
	}
	if err := p.control.SelectMode(m); err != nil {
		p.logger.Error("mode selection failed", "mode", m.String(), "error", err)
		return errors.Wrap(err, "select mode")
	}
	p.logger.Debug("mode combobox changed", "mode", m.String())
	if p.view != nil {
		p.view.SetModeDescription(m.Description())
	}
	return nil
}
