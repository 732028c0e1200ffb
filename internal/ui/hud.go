//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	gridColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	panelColor = color.RGBA{A: 0xb0}
)

// HUD draws the status line and optional grid lines over the board.
type HUD struct {
	cols, rows int
	scale      int
	showGrid   bool
	showStatus bool
	pixel      *ebiten.Image
}

// NewHUD constructs a HUD for a cols x rows board drawn at scale.
func NewHUD(cols, rows, scale int) *HUD {
	if scale <= 0 {
		scale = 1
	}
	h := &HUD{cols: cols, rows: rows, scale: scale, showStatus: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles HUD toggles: G for grid lines, H for the status line.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		h.showGrid = !h.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showStatus = !h.showStatus
	}
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h.showGrid && h.scale >= 4 {
		h.drawGrid(screen)
	}
	if !h.showStatus {
		return
	}
	line := s.Line()
	face := basicfont.Face7x13
	h.fillRect(screen, 0, 0, float64(len(line)*7+8), 18, panelColor)
	text.Draw(screen, line, face, 4, 13, color.White)
}

func (h *HUD) drawGrid(screen *ebiten.Image) {
	width := float64(h.cols * h.scale)
	height := float64(h.rows * h.scale)
	for c := 1; c < h.cols; c++ {
		h.fillRect(screen, float64(c*h.scale), 0, 1, height, gridColor)
	}
	for r := 1; r < h.rows; r++ {
		h.fillRect(screen, 0, float64(r*h.scale), width, 1, gridColor)
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, hgt float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(h.pixel, op)
}
