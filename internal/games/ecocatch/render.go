package ecocatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ecocatch/internal/core"
)

// Visual characters for rendering
const (
	GuideChar      = '·'
	RecyclableFill = '●'
	RecycleMark    = '♺'
	RecycleLeft    = '('
	RecycleRight   = ')'
	TrashFill      = '▓'
	TrashStroke    = '╲'
	PaddleChar     = '█'
	PaddleBand     = '▒'
)

// guideSpacing is the logical distance between background guide lines.
const guideSpacing = 40

// HUD carries the driver-side text the simulation knows nothing about.
type HUD struct {
	Hint        string // Right-aligned control hint on the top line
	SessionBest int    // Best final score of earlier rounds this session
	HasBest     bool
}

// Render draws a snapshot into dst, scaling logical coordinates to cells.
// It reads nothing but the snapshot and the HUD.
func Render(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.ScreenW <= 0 || snap.ScreenH <= 0 {
		return
	}

	v := viewport{
		sx: float64(dst.Width()) / snap.ScreenW,
		sy: float64(dst.Height()) / snap.ScreenH,
	}

	drawBackground(dst, v, snap.ScreenH)

	for _, it := range snap.Items {
		switch it.Category {
		case Recyclable:
			drawRecyclable(dst, v.rect(it.Box))
		case Trash:
			drawTrash(dst, v.rect(it.Box))
		}
	}

	drawPaddle(dst, v.rect(snap.Paddle))
	drawHUD(dst, snap, hud)

	if snap.GameOver {
		drawGameOver(dst, snap, hud)
	}
}

// viewport maps logical units to terminal cells.
type viewport struct {
	sx, sy float64
}

// rect converts a logical box to cells. Anything visible is at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x := int(math.Floor(b.X * v.sx))
	y := int(math.Floor(b.Y * v.sy))
	w := core.Max(1, int(math.Round(b.W*v.sx)))
	h := core.Max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

func drawBackground(dst *core.Screen, v viewport, screenH float64) {
	lastRow := -2
	for ly := 0.0; ly < screenH; ly += guideSpacing {
		row := int(ly * v.sy)
		if row <= lastRow+1 {
			continue // Keep guides at least one empty row apart on small terminals
		}
		lastRow = row
		for x := 0; x < dst.Width(); x += 4 {
			dst.SetWithColor(x, row, GuideChar, core.ColorDim)
		}
	}
}

func drawRecyclable(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, RecyclableFill, core.ColorGreen)
	if r.W >= 3 {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetWithColor(r.X, y, RecycleLeft, core.ColorBrightGreen)
			dst.SetWithColor(r.Right()-1, y, RecycleRight, core.ColorBrightGreen)
		}
	}
	dst.SetWithColor(r.X+r.W/2, r.Y+r.H/2, RecycleMark, core.ColorBrightWhite)
}

func drawTrash(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, TrashFill, core.ColorRed)
	// Diagonal from the top-left to the bottom-right corner
	steps := core.Max(r.W, r.H)
	for i := 0; i < steps; i++ {
		x := r.X + i*r.W/steps
		y := r.Y + i*r.H/steps
		dst.SetWithColor(x, y, TrashStroke, core.ColorBrightWhite)
	}
}

func drawPaddle(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, PaddleChar, core.ColorBlue)
	if r.W > 2 {
		dst.DrawHLine(r.X+1, r.Y, r.W-2, PaddleBand, core.ColorBrightBlue)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawText(1, 1, fmt.Sprintf("Missed: %d/%d", snap.MissedRecyclables, snap.MissLimit), core.ColorBrightRed)
	if hud.Hint != "" {
		dst.DrawTextRight(0, 1, hud.Hint, core.ColorGray)
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawGameOver blanks the scene and draws the final score box.
func drawGameOver(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.Clear()

	lines := []overlayLine{
		{"GAME OVER!", core.ColorBrightRed},
		{fmt.Sprintf("Final Score: %d", snap.Score), core.ColorBrightWhite},
	}
	if hud.HasBest {
		lines = append(lines, overlayLine{fmt.Sprintf("Best this session: %d", hud.SessionBest), core.ColorWhite})
	}
	lines = append(lines, overlayLine{"Press R to Restart or Q to Quit", core.ColorYellow})

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l.text)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGray)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawText(x, boxY+1+i*2, l.text, l.color)
	}
}
