package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberclassic/pkg/core"
)

// drawBomb 炸弹：黑色圆体，引线随时间变短；遥控炸弹没有引线
func drawBomb(screen *ebiten.Image, px, py float32, b *core.Bomb, tick uint64) {
	centerOffset := float32(core.TileSize) / 2
	cx := px + centerOffset
	cy := py + centerOffset

	ratio := 0.0
	if !b.Remote() {
		ratio = 1 - float64(b.Timer())/float64(core.BombFuseTicks)
		ratio = math.Max(0, math.Min(1, ratio))
	}

	radius := float32(12)
	blink := math.Sin(float64(tick-b.PlacedAt()) * 0.1)
	alpha := uint8(200 + 55*blink)

	vector.FillCircle(screen, cx, cy, radius, color.RGBA{0, 0, 0, alpha}, false)
	vector.StrokeCircle(screen, cx, cy, radius, 2, color.RGBA{50, 50, 50, 255}, false)

	if b.Remote() {
		// 遥控炸弹画一个红点
		vector.FillCircle(screen, cx, cy, 3, color.RGBA{255, 0, 0, 255}, false)
		return
	}

	fuseLength := float32(15 * (1 - ratio))
	if fuseLength > 0 {
		fuseX := cx - radius*0.5
		fuseY := cy - radius
		vector.StrokeLine(screen, fuseX, fuseY, fuseX-fuseLength*0.5, fuseY-fuseLength,
			2, color.RGBA{139, 69, 19, 255}, false)
		if blink > 0 {
			sparkColor := color.RGBA{255, uint8(100 + 155*blink), 0, 255}
			vector.FillCircle(screen, fuseX-fuseLength*0.5, fuseY-fuseLength, 3, sparkColor, false)
		}
	}

	// 快爆炸时的警告圈
	if ratio > 0.7 {
		warningAlpha := uint8((ratio - 0.7) / 0.3 * 100)
		warningRadius := radius + float32(10*(ratio-0.7)/0.3)
		vector.StrokeCircle(screen, cx, cy, warningRadius, 2,
			color.RGBA{255, 0, 0, warningAlpha}, false)
	}
}

// drawBlast 火焰：中心为方块，臂沿方向拉长，末端收窄
func drawBlast(screen *ebiten.Image, px, py float32, b *core.Blast) {
	ratio := 1 - float64(b.Remaining())/float64(core.BlastTicks)
	alpha := uint8(255 * (1 - ratio))

	var flame color.RGBA
	switch {
	case ratio < 0.3:
		flame = color.RGBA{255, 255, 0, alpha}
	case ratio < 0.6:
		flame = color.RGBA{255, 165, 0, alpha}
	default:
		flame = color.RGBA{255, 0, 0, alpha}
	}

	// 火焰宽度随时间先变粗后变细
	width := float32(core.TileSize) * float32(0.4+0.5*math.Sin(ratio*math.Pi))
	side := (core.TileSize - width) / 2

	x, y, w, h := px, py+side, float32(core.TileSize), width
	if !b.Direction().Horizontal() {
		x, y, w, h = px+side, py, width, float32(core.TileSize)
	}
	switch b.Kind() {
	case core.SegmentCenter:
		x, y, w, h = px+side, py+side, width, width
	case core.SegmentTip:
		// 末端只画靠近中心的一半
		dx, dy := b.Direction().Delta()
		if dx != 0 {
			w /= 2
			if dx < 0 {
				x += w
			}
		} else if dy != 0 {
			h /= 2
			if dy < 0 {
				y += h
			}
		}
	}

	vector.DrawFilledRect(screen, x, y, w, h, flame, false)
	if ratio < 0.5 {
		innerAlpha := uint8(200 * (1 - ratio*2))
		vector.DrawFilledRect(screen, x+w*0.2, y+h*0.2, w*0.6, h*0.6,
			color.RGBA{255, 255, 255, innerAlpha}, false)
	}
}
