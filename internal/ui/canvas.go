package ui

import (
	"strconv"
	"strings"

	"github.com/frametile/frametile/internal/layout"
)

// cellKind classifies a canvas cell for styling.
type cellKind uint8

const (
	cellBackground cellKind = iota
	cellBorder
	cellActiveBorder
	cellLabel
)

// grid is a character canvas the frame rectangles are painted onto.
// Each cell maps a region of the engine's canvas units.
type grid struct {
	width  int
	height int
	runes  [][]rune
	kinds  [][]cellKind
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height}
	g.runes = make([][]rune, height)
	g.kinds = make([][]cellKind, height)
	for y := range g.runes {
		g.runes[y] = make([]rune, width)
		g.kinds[y] = make([]cellKind, width)
		for x := range g.runes[y] {
			g.runes[y][x] = ' '
		}
	}
	return g
}

// paintFrames maps every frame from canvas units onto the cell grid and
// draws its border and centered index label. The active frame is drawn
// last so its border wins shared edges.
func paintFrames(frames []layout.Frame, active, canvasW, canvasH, cols, rows int) *grid {
	g := newGrid(cols, rows)
	if cols < 2 || rows < 2 || canvasW < 1 || canvasH < 1 {
		return g
	}

	for i, frame := range frames {
		if i == active {
			continue
		}
		g.drawFrame(frame, i, canvasW, canvasH, cellBorder)
	}
	if active >= 0 && active < len(frames) {
		g.drawFrame(frames[active], active, canvasW, canvasH, cellActiveBorder)
	}
	return g
}

func (g *grid) drawFrame(frame layout.Frame, num int, canvasW, canvasH int, border cellKind) {
	x1 := frame.X * g.width / canvasW
	y1 := frame.Y * g.height / canvasH
	x2 := frame.Right()*g.width/canvasW - 1
	y2 := frame.Bottom()*g.height/canvasH - 1

	if x2 >= g.width {
		x2 = g.width - 1
	}
	if y2 >= g.height {
		y2 = g.height - 1
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		g.set(x, y1, '─', border)
		g.set(x, y2, '─', border)
	}
	for y := y1; y <= y2; y++ {
		g.set(x1, y, '│', border)
		g.set(x2, y, '│', border)
	}
	g.set(x1, y1, '┌', border)
	g.set(x2, y1, '┐', border)
	g.set(x1, y2, '└', border)
	g.set(x2, y2, '┘', border)

	// Centered 1-based frame number.
	label := strconv.Itoa(num + 1)
	centerX := (x1 + x2) / 2
	centerY := (y1 + y2) / 2
	startX := centerX - len(label)/2
	if centerY > y1 && centerY < y2 {
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				g.set(startX+i, centerY, r, cellLabel)
			}
		}
	}
}

func (g *grid) set(x, y int, r rune, kind cellKind) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.runes[y][x] = r
	g.kinds[y][x] = kind
}

// plain returns the grid as uncolored text lines.
func (g *grid) plain() []string {
	lines := make([]string, g.height)
	for y, row := range g.runes {
		lines[y] = string(row)
	}
	return lines
}

// styled renders the grid with the theme styles applied, grouping
// consecutive cells of the same kind into one styled run per row.
func (g *grid) styled(st Styles) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		runStart := 0
		for x := 1; x <= g.width; x++ {
			if x < g.width && g.kinds[y][x] == g.kinds[y][runStart] {
				continue
			}
			text := string(g.runes[y][runStart:x])
			sb.WriteString(st.forKind(g.kinds[y][runStart]).Render(text))
			runStart = x
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Snapshot renders a layout as plain ASCII on a fixed-size grid. The MCP
// adapter returns it so clients can eyeball the geometry without a
// terminal.
func Snapshot(frames []layout.Frame, active, canvasW, canvasH int) string {
	const snapshotCols, snapshotRows = 48, 16
	g := paintFrames(frames, active, canvasW, canvasH, snapshotCols, snapshotRows)
	return strings.Join(g.plain(), "\n")
}
