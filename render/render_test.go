package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
	"github.com/lixenwraith/termpaint/dialog"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func cellBackground(s tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestPixelToTcell(t *testing.T) {
	red := core.RGB(237, 28, 36)
	if got := PixelToTcell(red); got != tcell.NewRGBColor(237, 28, 36) {
		t.Errorf("Expected RGB color for opaque pixel, got %v", got)
	}
	if got := PixelToTcell(core.RGBA(237, 28, 36, 128)); got != tcell.ColorReset {
		t.Errorf("Expected ColorReset for translucent pixel, got %v", got)
	}
	if got := PixelToTcell(core.Pixel{}); got != tcell.ColorReset {
		t.Errorf("Expected ColorReset for zero pixel, got %v", got)
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		name string
		p    core.Pixel
		want tcell.Color
	}{
		{"black", core.Black, tcell.ColorWhite},
		{"white", core.White, tcell.ColorBlack},
		{"yellow", core.RGB(255, 242, 0), tcell.ColorBlack},
		{"navy", core.RGB(47, 54, 153), tcell.ColorWhite},
		{"transparent", core.Pixel{}, tcell.ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastColor(tt.p); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCanvasRendererTwoCellsPerPixel(t *testing.T) {
	s := newTestScreen(t, 20, 5)
	c := canvas.New(10, 5)
	c.SetColor(core.RGB(34, 177, 76))
	c.InteractWithPixel(3, 2)

	NewCanvasRenderer().Render(RenderContext{Pixels: c.Pixels()}, s)

	green := tcell.NewRGBColor(34, 177, 76)
	for _, x := range []int{6, 7} {
		if got := cellBackground(s, x, 2); got != green {
			t.Errorf("Expected cell (%d,2) green, got %v", x, got)
		}
	}
	for _, x := range []int{5, 8} {
		if got := cellBackground(s, x, 2); got == green {
			t.Errorf("Expected cell (%d,2) not painted", x)
		}
	}
	if got := cellBackground(s, 0, 0); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("Expected white background at origin, got %v", got)
	}
}

func TestCanvasRendererClipsToSurface(t *testing.T) {
	s := newTestScreen(t, 5, 2)
	c := canvas.New(10, 10)
	c.SetColor(core.Black)
	c.SetTool(canvas.ToolBucket)
	c.InteractWithPixel(0, 0)

	// Must not panic when the canvas exceeds the surface
	NewCanvasRenderer().Render(RenderContext{Pixels: c.Pixels()}, s)

	if got := cellBackground(s, 4, 1); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Expected last visible cell black, got %v", got)
	}
}

func TestOverlayRendererHidden(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	d := dialog.New(core.Size{Rows: 24, Columns: 80})
	frame := d.Render(canvas.ToolPaintbrush, core.White)

	r := NewOverlayRenderer(true)
	if r.IsVisible(RenderContext{Overlay: frame}) {
		t.Fatal("Expected overlay invisible for a hidden dialog")
	}

	o := NewOrchestrator(s)
	o.Register(r, PriorityOverlay)
	o.RenderFrame(RenderContext{Overlay: frame})

	mainc, _, _, _ := s.GetContent(4, 20)
	if mainc == 'B' {
		t.Error("Expected hidden dialog to draw nothing")
	}

	d.SetHidden(false)
	if !r.IsVisible(RenderContext{Overlay: d.Render(canvas.ToolPaintbrush, core.White)}) {
		t.Error("Expected overlay visible once the dialog is shown")
	}
}

func TestOverlayRendererASCII(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	d := dialog.New(core.Size{Rows: 24, Columns: 80})
	d.SetHidden(false)
	frame := d.Render(canvas.ToolBucket, core.Palette[3])

	NewOverlayRenderer(true).Render(RenderContext{Overlay: frame}, s)

	mainc, _, style, _ := s.GetContent(4, 20)
	if mainc != 'B' {
		t.Errorf("Expected paintbrush icon 'B' at (4,20), got %q", mainc)
	}
	if _, bg, _ := style.Decompose(); bg == tcell.ColorWhite {
		t.Error("Expected inactive tool without highlight")
	}

	mainc, _, style, _ = s.GetContent(4, 21)
	if mainc != 'F' {
		t.Errorf("Expected bucket icon 'F' at (4,21), got %q", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.ColorWhite {
		t.Errorf("Expected active tool highlighted white, got %v", bg)
	}
}

func TestOverlayRendererSwatches(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	d := dialog.New(core.Size{Rows: 24, Columns: 80})
	d.SetHidden(false)
	selected := core.Palette[3]
	frame := d.Render(canvas.ToolPaintbrush, selected)

	NewOverlayRenderer(false).Render(RenderContext{Overlay: frame}, s)

	for _, sw := range frame.Palette.Swatches {
		for i := 0; i < constants.SwatchWidth; i++ {
			mainc, _, style, _ := s.GetContent(sw.At.X+i, sw.At.Y)
			_, bg, _ := style.Decompose()
			if bg != PixelToTcell(sw.Color) {
				t.Errorf("Expected swatch %d background %v, got %v", sw.Index, PixelToTcell(sw.Color), bg)
			}
			if sw.Index == 3 && mainc != selectionMarker {
				t.Errorf("Expected selection marker on swatch 3, got %q", mainc)
			}
			if sw.Index != 3 && mainc != ' ' {
				t.Errorf("Expected blank swatch %d, got %q", sw.Index, mainc)
			}
		}
	}
}

func TestOverlayDrawsOverCanvas(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	c := canvas.New(40, 24)
	c.SetColor(core.Black)
	c.SetTool(canvas.ToolBucket)
	c.InteractWithPixel(0, 0)

	d := dialog.New(core.Size{Rows: 24, Columns: 80})
	d.SetHidden(false)

	o := NewOrchestrator(s)
	// Registered out of order; priority decides draw order
	o.Register(NewOverlayRenderer(true), PriorityOverlay)
	o.Register(NewCanvasRenderer(), PriorityCanvas)
	o.RenderFrame(RenderContext{
		Pixels:  c.Pixels(),
		Overlay: d.Render(c.Tool(), c.Color()),
	})

	// Toolbar panel cell not holding an icon is cleared to default
	if got := cellBackground(s, 2, 19); got != tcell.ColorReset && got != tcell.ColorDefault {
		t.Errorf("Expected toolbar panel background default, got %v", got)
	}
	// Outside any panel the canvas shows through
	if got := cellBackground(s, 40, 10); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Expected canvas black outside dialog, got %v", got)
	}
}

type orderRecorder struct {
	name string
	log  *[]string
}

func (r orderRecorder) Render(RenderContext, Surface) {
	*r.log = append(*r.log, r.name)
}

type hiddenRenderer struct {
	orderRecorder
}

func (hiddenRenderer) IsVisible(RenderContext) bool { return false }

func TestOrchestratorOrder(t *testing.T) {
	s := newTestScreen(t, 10, 10)
	var log []string

	o := NewOrchestrator(s)
	o.Register(orderRecorder{"overlay", &log}, PriorityOverlay)
	o.Register(orderRecorder{"canvas-a", &log}, PriorityCanvas)
	o.Register(orderRecorder{"canvas-b", &log}, PriorityCanvas)
	o.Register(hiddenRenderer{orderRecorder{"hidden", &log}}, PriorityCanvas)
	o.RenderFrame(RenderContext{})

	want := []string{"canvas-a", "canvas-b", "overlay"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at position %d, got %s", want[i], i, log[i])
		}
	}
}
