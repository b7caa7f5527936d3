package cli

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/cndemo/loopview"
	"github.com/cndemo/loopview/host/ebitenhost"
)

const angleStep = 15

var previewOpts viewFlags

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the view in an ebiten window",
	Long: `Preview the view in an ebiten window and edit it live.

Keys:
  Space      toggle the inner circle
  Up/Down    change the sweep by 15 degrees
  C          pick the top color
  V          pick the bottom color
  Esc/Q      quit`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	addViewFlags(previewCmd, &previewOpts)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	v, err := buildView(cmd.Flags(), &previewOpts)
	if err != nil {
		return err
	}
	w, h := v.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())
	ebiten.SetWindowSize(max(w*2, 320), max(h*2, 320))
	ebiten.SetWindowTitle("loopview - Space: inner circle, Up/Down: sweep, C/V: colors, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newPreviewGame(v)
	defer g.loop.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// colorPick is the result of a color dialog.
type colorPick struct {
	top bool
	c   color.Color
	err error
}

// colorPicker opens a blocking color dialog.
type colorPicker func(title string, initial color.Color) (color.Color, error)

func zenityPicker(title string, initial color.Color) (color.Color, error) {
	return zenity.SelectColor(zenity.Title(title), zenity.Color(initial), zenity.ShowPalette())
}

type previewGame struct {
	loop *ebitenhost.Loop
	pick colorPicker

	picks   chan colorPick
	picking bool
	prevKey map[ebiten.Key]bool
}

func newPreviewGame(v *loopview.LoopView) *previewGame {
	return &previewGame{
		loop:    ebitenhost.New(v),
		pick:    zenityPicker,
		picks:   make(chan colorPick, 1),
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *previewGame) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	v := g.loop.View()
	if justPressed(ebiten.KeySpace) {
		v.SetShowInnerCircle(!v.ShowInnerCircle())
	}
	if justPressed(ebiten.KeyArrowUp) {
		v.SetAngle(v.Angle() + angleStep)
	}
	if justPressed(ebiten.KeyArrowDown) {
		v.SetAngle(v.Angle() - angleStep)
	}
	if justPressed(ebiten.KeyC) {
		g.startPick(true)
	}
	if justPressed(ebiten.KeyV) {
		g.startPick(false)
	}

	g.applyPicks()
	return nil
}

// startPick opens the dialog off the game loop; the result is applied by
// applyPicks on a later Update.
func (g *previewGame) startPick(top bool) {
	if g.picking {
		return
	}
	g.picking = true

	v := g.loop.View()
	title, initial := "Bottom color", v.BottomColor()
	if top {
		title, initial = "Top color", v.TopColor()
	}
	go func() {
		c, err := g.pick(title, toNRGBA(initial))
		g.picks <- colorPick{top: top, c: c, err: err}
	}()
}

func (g *previewGame) applyPicks() {
	select {
	case p := <-g.picks:
		g.picking = false
		if p.err != nil {
			if !errors.Is(p.err, zenity.ErrCanceled) {
				loopview.Logger().Warn("preview: color dialog", "err", p.err)
			}
			return
		}
		v := g.loop.View()
		if p.top {
			v.SetColors(fromColor(p.c), v.BottomColor())
		} else {
			v.SetColors(v.TopColor(), fromColor(p.c))
		}
	default:
	}
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xFF})
	sb := screen.Bounds()
	w, h := g.loop.Size()
	x := float64(sb.Dx()-w) / 2
	y := float64(sb.Dy()-h) / 2
	if err := g.loop.Draw(screen, x, y); err != nil {
		loopview.Logger().Warn("preview: draw", "err", err)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func toNRGBA(c loopview.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func fromColor(c color.Color) loopview.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return loopview.ARGB(n.A, n.R, n.G, n.B)
}
