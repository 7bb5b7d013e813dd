package tetris

import (
	"fmt"

	"github.com/ttrys/ttrys/internal/core"
)

// Rendering layout. Each playfield cell is two characters wide so blocks
// come out roughly square on terminal fonts.
const (
	cellWidth  = 2
	hudHeight  = 2 // status line plus separator
	sidebarW   = 14
	sidebarGap = 2
)

const (
	blockRune   = '█'
	pendingRune = '▒'
)

// requiredWidth returns the minimum screen width for the current config.
func (g *Game) requiredWidth() int {
	return g.wellBoxWidth() + sidebarGap + sidebarW
}

// requiredHeight returns the minimum screen height for the current config.
func (g *Game) requiredHeight() int {
	return hudHeight + g.cfg.Well.Height + 2
}

// wellBoxWidth returns the bordered well width in screen characters.
func (g *Game) wellBoxWidth() int {
	return g.cfg.Well.Width*cellWidth + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	wellX := (dst.Width() - g.requiredWidth()) / 2
	if wellX < 0 {
		wellX = 0
	}
	wellY := hudHeight

	g.renderWell(dst, wellX, wellY)
	g.renderSidebar(dst, wellX+g.wellBoxWidth()+sidebarGap, wellY)

	switch g.phase {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d  Lines: %d", g.Title(), g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the bordered playfield: locked blocks, flashing
// pending rows, and the active piece.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, g.wellBoxWidth(), g.grid.Height()+2))

	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			cell := g.grid.At(x, y)
			switch cell.State {
			case CellOccupied:
				g.drawBlock(dst, ox, oy, x, y, blockRune, cell.Color)
			case CellPending:
				g.drawBlock(dst, ox, oy, x, y, pendingRune, core.ColorWhite)
			}
		}
	}

	if g.hasActive {
		color := g.active.Shape.Color()
		for _, c := range g.active.Cells() {
			g.drawBlock(dst, ox, oy, c.X, c.Y, blockRune, color)
		}
	}
}

// drawBlock draws one playfield cell as a two-character block inside the
// well border at (ox, oy).
func (g *Game) drawBlock(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	sx := ox + 1 + x*cellWidth
	sy := oy + 1 + y
	dst.SetCell(sx, sy, r, c)
	dst.SetCell(sx+1, sy, r, c)
}

// renderSidebar draws the next-piece preview and the key hints.
func (g *Game) renderSidebar(dst *core.Screen, ox, oy int) {
	next := g.NextShape()

	previewBox := core.NewRect(ox, oy, 4*cellWidth+2, 6)
	dst.DrawBox(previewBox)
	dst.DrawText(ox+1, oy, "Next")

	color := next.Color()
	for _, o := range Offsets(next, 0) {
		sx := ox + 1 + o.DX*cellWidth
		sy := oy + 1 + o.DY
		dst.SetCell(sx, sy, blockRune, color)
		dst.SetCell(sx+1, sy, blockRune, color)
	}

	hints := []string{
		"←/→ move",
		"↑/z rotate",
		"↓ soft drop",
		"spc hard drop",
		"p pause",
		"q quit",
	}
	hy := oy + previewBox.H + 1
	for i, h := range hints {
		dst.DrawTextColored(ox, hy+i, h, core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(core.NewRect(boxX+1, boxY+1, boxW-2, boxH-2), ' ')
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawTextColored(boxX+(boxW-len(line2))/2, boxY+3, line2, core.ColorGray)
}
