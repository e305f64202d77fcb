package preview

import (
	"image"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const labelSize = 9

// noteLabeler draws note numbers onto pads.
// A nil font leaves pads unlabelled.
type noteLabeler struct {
	font *truetype.Font
	face font.Face
}

func newNoteLabeler(ttf []byte) (*noteLabeler, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}
	return &noteLabeler{
		font: f,
		face: truetype.NewFace(f, &truetype.Options{Size: labelSize, DPI: 72}),
	}, nil
}

// render draws note in c on a transparent image sized to the text
func (l *noteLabeler) render(note uint8, c color.Color) image.Image {
	text := strconv.Itoa(int(note))
	width := font.MeasureString(l.face, text).Ceil()
	m := l.face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()

	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	ctx := freetype.NewContext()
	ctx.SetFont(l.font)
	ctx.SetFontSize(labelSize)
	ctx.SetDPI(72)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	// Ignored: the destination is sized from the same face
	_, _ = ctx.DrawString(text, freetype.Pt(0, m.Ascent.Ceil()))
	return dst
}

// padLabel returns the canvas object for a pad's note label
func (l *noteLabeler) padLabel(note uint8) fyne.CanvasObject {
	img := l.render(note, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	b := img.Bounds()

	label := canvas.NewImageFromImage(img)
	label.FillMode = canvas.ImageFillOriginal
	label.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return label
}
