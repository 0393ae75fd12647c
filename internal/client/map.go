package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberclassic/pkg/core"
)

// drawHard 硬墙：灰色加十字纹理
func drawHard(screen *ebiten.Image, px, py float32) {
	vector.DrawFilledRect(screen, px, py, core.TileSize, core.TileSize, color.RGBA{80, 80, 80, 255}, false)
	vector.StrokeRect(screen, px, py, core.TileSize, core.TileSize, 1, color.RGBA{0, 0, 0, 100}, false)
	vector.StrokeLine(screen, px+core.TileSize/2, py+5, px+core.TileSize/2, py+core.TileSize-5,
		2, color.RGBA{60, 60, 60, 255}, false)
	vector.StrokeLine(screen, px+5, py+core.TileSize/2, px+core.TileSize-5, py+core.TileSize/2,
		2, color.RGBA{60, 60, 60, 255}, false)
}

// drawSoft 砖块，被炸时逐渐缩小
func drawSoft(screen *ebiten.Image, px, py float32, s *core.SoftBlock) {
	size := float32(core.TileSize)
	if s.Dead() {
		// 第 0 列是完整砖块，之后每列缩一点
		frame := s.Sprite().Col - 4
		size = size * float32(6-frame) / 7
	}
	off := (core.TileSize - size) / 2
	vector.DrawFilledRect(screen, px+off, py+off, size, size, color.RGBA{205, 133, 63, 255}, false)
	vector.StrokeRect(screen, px+off, py+off, size, size, 1, color.RGBA{0, 0, 0, 100}, false)
	for i := range 3 {
		lineY := py + off + size*float32(2*i+1)/6
		vector.StrokeLine(screen, px+off+2, lineY, px+off+size-2, lineY, 1,
			color.RGBA{180, 118, 53, 255}, false)
	}
}

// drawBonus 道具：彩色方块，出口画成门
func drawBonus(screen *ebiten.Image, px, py float32, b *core.Bonus) {
	c := bonusColor(b.Kind())
	if b.IsExit() {
		vector.DrawFilledRect(screen, px+4, py+2, core.TileSize-8, core.TileSize-2, c, false)
		vector.StrokeRect(screen, px+4, py+2, core.TileSize-8, core.TileSize-2, 2, color.RGBA{200, 200, 200, 255}, false)
		vector.FillCircle(screen, px+core.TileSize-10, py+core.TileSize/2+2, 2, color.RGBA{255, 220, 0, 255}, false)
		return
	}
	vector.DrawFilledRect(screen, px+3, py+3, core.TileSize-6, core.TileSize-6, c, false)
	vector.StrokeRect(screen, px+3, py+3, core.TileSize-6, core.TileSize-6, 2, color.RGBA{255, 255, 255, 255}, false)
	// 用点数区分种类
	for i := 0; i <= int(b.Kind()); i++ {
		dx := float32(8 + (i%4)*5)
		dy := float32(12 + (i/4)*8)
		vector.FillCircle(screen, px+dx, py+dy, 1.5, color.RGBA{255, 255, 255, 255}, false)
	}
}
