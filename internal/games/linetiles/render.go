package linetiles

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/linetiles/internal/core"
	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
)

const (
	hudHeight = 3 // Title, layout and stats lines
	cellWidth = 2 // Glyph plus a connector to the right
)

// closedPalette colors closed groups in the order they are found.
var closedPalette = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorRed,
}

func frameWidth(w int) int  { return w*cellWidth + 3 }
func frameHeight(h int) int { return h + 2 }

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.puzzle == nil {
		g.drawOverlay(dst, "NO BOARD", errorText(g.loadErr), "Press Q to quit")
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.puzzle.Width(), g.puzzle.Height()
	frame := core.NewRect((g.screenW-frameWidth(w))/2, hudHeight+1, frameWidth(w), frameHeight(h))

	moves := g.puzzle.Moves()
	err := g.puzzle.View(func(b *tiles.Board, pt tiles.Partition) {
		g.renderHUD(dst, moves, pt)
		g.renderBoard(dst, frame, b, pt)
	})
	if err != nil {
		dst.Clear()
		g.drawOverlay(dst, "BAD BOARD", errorText(err), "Press R to restart")
		return
	}
	if g.cfg.Display.ShowCursor {
		g.renderCursor(dst, frame)
	}

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the mode, layout name and group counts.
func (g *Game) renderHUD(dst *core.Screen, moves int, pt tiles.Partition) {
	dst.DrawTextCenteredWithColor(0, "LINE TILES", core.ColorBrightWhite)

	var layout string
	if g.mode == ModeCampaign {
		layout = fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), g.LevelName())
	} else {
		layout = g.LevelName()
	}
	dst.DrawTextCentered(1, layout)

	stats := fmt.Sprintf("Moves: %d  Groups: %d  Closed: %d", moves, len(pt.Groups), pt.ClosedCount())
	closedColor := core.ColorDefault
	if pt.ClosedCount() > 0 {
		closedColor = core.ColorBrightGreen
	}
	dst.DrawTextCenteredWithColor(2, stats, closedColor)
}

// renderBoard draws the frame and every tile, coloring closed groups.
// Board row 0 is drawn at the bottom.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect, b *tiles.Board, pt tiles.Partition) {
	dst.DrawBox(frame, core.ColorGray)

	colors := g.groupColors(pt)
	for _, t := range b.Tiles() {
		p := t.Position()
		x, y := tileScreenPos(frame, b.Height(), p)
		c := colors[pt.GroupAt(p)]

		dst.SetWithColor(x, y, tiles.Glyph(t.Mask()), c)
		if t.Mask().Has(tiles.EdgeRight) {
			dst.SetWithColor(x+1, y, '─', c)
		}
		if p.Col == 0 && t.Mask().Has(tiles.EdgeLeft) {
			dst.SetWithColor(x-1, y, '─', c)
		}
	}
}

// groupColors picks a color per group. Closed groups get a palette color
// that alternates with its bright variant; open groups stay plain.
func (g *Game) groupColors(pt tiles.Partition) []core.Color {
	flashOn := false
	if period := g.cfg.Display.FlashPeriod; period > 0 {
		flashOn = (g.tick/uint64(period))%2 == 1
	}

	colors := make([]core.Color, len(pt.Groups))
	closed := 0
	for i, grp := range pt.Groups {
		if !grp.Closed {
			colors[i] = core.ColorDefault
			continue
		}
		c := closedPalette[closed%len(closedPalette)]
		if flashOn {
			c = c.Bright()
		}
		colors[i] = c
		closed++
	}
	return colors
}

// renderCursor marks the selected column above and below the frame and
// the selected row to its left and right.
func (g *Game) renderCursor(dst *core.Screen, frame core.Rect) {
	x, y := tileScreenPos(frame, g.puzzle.Height(), g.cursor)
	dst.SetWithColor(x, frame.Y-1, '▼', core.ColorYellow)
	dst.SetWithColor(x, frame.Bottom(), '▲', core.ColorYellow)
	dst.SetWithColor(frame.X-1, y, '▶', core.ColorYellow)
	dst.SetWithColor(frame.Right(), y, '◀', core.ColorYellow)
}

// tileScreenPos maps a board position to the screen cell of its glyph.
func tileScreenPos(frame core.Rect, height int, p tiles.Position) (int, int) {
	return frame.X + 2 + p.Col*cellWidth, frame.Y + 1 + (height - 1 - p.Row)
}

// drawOverlay draws a centered text box over the screen.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	box := screen.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
