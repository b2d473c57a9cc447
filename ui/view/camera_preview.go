package view

import (
	"image"

	"github.com/soocke/signdetect-go/ui/images"
	"github.com/soocke/signdetect-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CameraPreview shows the framed camera image with a two-line caption below it.
type CameraPreview interface {
	UpdatePreview(img image.Image)
	SetCaption(title, subtitle string)
	Reset()
}

type cameraPreview struct {
	imageLabel *LabelWidget
	title      *LabelWidget
	subtitle   *LabelWidget
	width      int
	height     int
	prevPhoto  *Img // last Tk photo, deleted before replacement
}

// NewCameraPreview creates the preview widgets in parent at row. Clicking the
// image invokes onClick.
func NewCameraPreview(parent *FrameWidget, row, width, height int, onClick func()) CameraPreview {
	v := &cameraPreview{width: width, height: height}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(images.ComposePreview(nil, width, height, false))))
	v.imageLabel = Label(Image(v.prevPhoto), Borderwidth(0), Cursor("hand2"))
	p := theme.CurrentPalette()
	v.title = Label(Txt(""), Font("Helvetica", 13, "bold"), Foreground(p.Text), Background(p.AppBg))
	v.subtitle = Label(Txt(""), Font("Helvetica", 10), Foreground(p.TextMuted), Background(p.AppBg))
	Grid(v.imageLabel, In(parent), Row(row), Column(0), Columnspan(2), Padx("0.4m"), Pady("0.4m"))
	Grid(v.title, In(parent), Row(row+1), Column(0), Columnspan(2))
	Grid(v.subtitle, In(parent), Row(row+2), Column(0), Columnspan(2), Pady("0.2m"))
	if onClick != nil {
		Bind(v.imageLabel, "<Button-1>", Command(onClick))
	}
	return v
}

func (v *cameraPreview) UpdatePreview(img image.Image) {
	if v.imageLabel == nil || img == nil {
		return
	}
	v.replace(images.EncodePNG(img))
}

func (v *cameraPreview) SetCaption(title, subtitle string) {
	if v.title != nil {
		v.title.Configure(Txt(title))
	}
	if v.subtitle != nil {
		v.subtitle.Configure(Txt(subtitle))
	}
}

func (v *cameraPreview) Reset() {
	if v.imageLabel == nil {
		return
	}
	v.replace(images.EncodePNG(images.ComposePreview(nil, v.width, v.height, false)))
}

func (v *cameraPreview) replace(png []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(png))
	v.imageLabel.Configure(Image(v.prevPhoto))
}
