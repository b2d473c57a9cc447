package view

import (
	"github.com/soocke/signdetect-go/ui/presenter"
	"github.com/soocke/signdetect-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ResultsCard renders the "Detection Results" card: either a status line or
// the detected sign with its confidence.
type ResultsCard interface {
	ShowStatus(text string, processing bool)
	ShowResult(card presenter.ResultCard)
}

type resultsCard struct {
	frame      *FrameWidget
	status     *LabelWidget
	signCap    *LabelWidget
	sign       *LabelWidget
	confCap    *LabelWidget
	confidence *LabelWidget
	bar        *TProgressbarWidget
	card       string
}

// NewResultsCard builds the card inside parent at row.
func NewResultsCard(parent *FrameWidget, row int) ResultsCard {
	p := theme.CurrentPalette()
	c := &resultsCard{card: p.Card}
	c.frame = Frame(Background(p.Card), Borderwidth(1), Relief("groove"))
	Grid(c.frame, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.6m"))
	title := Label(Txt("Detection Results"), Font("Helvetica", 12, "bold"), Foreground(p.Text), Background(p.Card))
	Grid(title, In(c.frame), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("1m"), Pady("0.5m"))

	c.status = Label(Txt(""), Font("Helvetica", 10), Foreground(p.TextMuted), Background(p.Card))
	Grid(c.status, In(c.frame), Row(1), Column(0), Columnspan(2), Pady("1m"))

	c.signCap = Label(Txt(""), Font("Helvetica", 9), Foreground(p.Text), Background(p.Card))
	c.confCap = Label(Txt(""), Font("Helvetica", 9), Foreground(p.Text), Background(p.Card))
	Grid(c.signCap, In(c.frame), Row(2), Column(0), Sticky("w"), Padx("1m"))
	Grid(c.confCap, In(c.frame), Row(2), Column(1), Sticky("e"), Padx("1m"))
	c.sign = Label(Txt(""), Font("Helvetica", 18, "bold"), Background(p.Card))
	c.confidence = Label(Txt(""), Font("Helvetica", 15, "bold"), Background(p.Card))
	Grid(c.sign, In(c.frame), Row(3), Column(0), Sticky("w"), Padx("1m"))
	Grid(c.confidence, In(c.frame), Row(3), Column(1), Sticky("e"), Padx("1m"))
	c.bar = TProgressbar(Orient("horizontal"), Mode("determinate"), Maximum(100), Value(0), Length(320), Style(theme.StyleBarSuccess))
	Grid(c.bar, In(c.frame), Row(4), Column(0), Columnspan(2), Sticky("we"), Padx("1m"), Pady("0.8m"))
	return c
}

func (c *resultsCard) ShowStatus(text string, processing bool) {
	font := Font("Helvetica", 10)
	if processing {
		font = Font("Helvetica", 10, "italic")
	}
	c.paint(c.card)
	c.status.Configure(Txt(text), font)
	c.signCap.Configure(Txt(""))
	c.confCap.Configure(Txt(""))
	c.sign.Configure(Txt(""))
	c.confidence.Configure(Txt(""))
	c.bar.Configure(Value(0))
}

func (c *resultsCard) ShowResult(card presenter.ResultCard) {
	c.paint(card.Colors.Background)
	c.status.Configure(Txt(""))
	c.signCap.Configure(Txt("Detected Sign:"))
	c.confCap.Configure(Txt("Confidence:"))
	c.sign.Configure(Txt(card.Label), Foreground(card.Colors.Text))
	c.confidence.Configure(Txt(card.Percent), Foreground(card.Colors.Text))
	c.bar.Configure(Value(int(card.Confidence*100)), Style(theme.BarStyle(card.Colors.Bar)))
}

func (c *resultsCard) paint(bg string) {
	c.frame.Configure(Background(bg))
	for _, l := range []*LabelWidget{c.status, c.signCap, c.sign, c.confCap, c.confidence} {
		l.Configure(Background(bg))
	}
}
