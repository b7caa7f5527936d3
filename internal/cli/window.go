package cli

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/spf13/cobra"

	"github.com/cndemo/loopview"
	"github.com/cndemo/loopview/host/gpuhost"
)

type windowFlags struct {
	view viewFlags
	spin float64
}

var windowOpts windowFlags

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the view in a gogpu window",
	Long: `Show the view in a GPU accelerated gogpu window, centred.

Keys:
  Space  toggle the inner circle

With --spin the arc sweeps continuously at the given degrees per second.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addViewFlags(windowCmd, &windowOpts.view)
	windowCmd.Flags().Float64Var(&windowOpts.spin, "spin", 0, "animate the sweep in degrees per second")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, _ []string) error {
	v, err := buildView(cmd.Flags(), &windowOpts.view)
	if err != nil {
		return err
	}
	w, h := v.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("loopview").
		WithSize(max(w*2, 320), max(h*2, 320)).
		WithContinuousRender(true))

	var surface *gpuhost.Surface
	start := time.Now()
	spinner := newSpinner(v.Angle(), windowOpts.spin)

	app.OnDraw(func(dc *gogpu.Context) {
		if dc.Width() <= 0 || dc.Height() <= 0 {
			return
		}
		if surface == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			s, err := gpuhost.New(provider, v)
			if err != nil {
				loopview.Logger().Error("window: create surface", "err", err)
				return
			}
			surface = s
		}

		if a, ok := spinner.angle(time.Since(start)); ok && a != v.Angle() {
			v.SetAngle(a)
		}

		sw, sh := surface.Size()
		x := float32(dc.Width()-sw) / 2
		y := float32(dc.Height()-sh) / 2
		if err := surface.Frame(dc.AsTextureDrawer(), x, y); err != nil {
			loopview.Logger().Warn("window: frame", "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeySpace {
			v.SetShowInnerCircle(!v.ShowInnerCircle())
		}
	})

	app.OnClose(func() {
		if surface != nil {
			_ = surface.Close()
		}
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// spinner maps elapsed time to a sweep angle.
type spinner struct {
	base  int
	speed float64 // degrees per second
}

func newSpinner(base int, speed float64) spinner {
	return spinner{base: base, speed: speed}
}

// angle returns the sweep after elapsed, cycling through 0..360. ok is false
// when the spinner is disabled.
func (s spinner) angle(elapsed time.Duration) (deg int, ok bool) {
	if s.speed == 0 {
		return s.base, false
	}
	d := int(s.speed*elapsed.Seconds()) + s.base
	d %= loopview.MaxAngle + 1
	if d < 0 {
		d += loopview.MaxAngle + 1
	}
	return d, true
}
