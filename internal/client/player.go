package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberclassic/pkg/core"
)

// drawPlayer 玩家：方形身体、手脚随行走帧摆动，眼睛朝向移动方向
func drawPlayer(screen *ebiten.Image, px, py float32, p *core.Player, tick uint64) {
	info := PlayerInfo
	if p.Invisible() > 0 && tick/4%2 == 0 {
		// 隐身时闪烁
		return
	}
	if p.Dead() {
		info.BodyColor = color.RGBA{255, 80, 80, 255}
	}

	size := float32(core.TileSize)
	bodyWidth := size * 0.7
	bodyHeight := size * 0.7
	drawX := px + (size-bodyWidth)/2
	drawY := py + (size-bodyHeight)/2 - 2

	vector.DrawFilledRect(screen, drawX, drawY, bodyWidth, bodyHeight, info.BodyColor, false)
	vector.StrokeRect(screen, drawX, drawY, bodyWidth, bodyHeight, 2, info.OutlineColor, false)

	// 行走帧的奇数帧手脚外摆
	swing := float32(0)
	if p.Sprite().Col%2 == 1 {
		swing = 2
	}

	handSize := bodyWidth * 0.25
	vector.FillCircle(screen, drawX-swing-2, drawY+bodyHeight*0.6, handSize, info.HandColor, false)
	vector.FillCircle(screen, drawX+bodyWidth+swing+2, drawY+bodyHeight*0.6, handSize, info.HandColor, false)

	footSize := bodyWidth * 0.3
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.2-swing, drawY+bodyHeight, footSize, footSize*0.6, info.ShoeColor, false)
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.6+swing, drawY+bodyHeight, footSize, footSize*0.6, info.ShoeColor, false)

	drawEyes(screen, drawX, drawY, bodyWidth, bodyHeight, p.Facing())
}

// drawEnemy 敌人：圆形身体，死亡时缩小变灰
func drawEnemy(screen *ebiten.Image, px, py float32, e *core.Enemy) {
	info := EnemyInfo(e.Species())
	radius := float32(core.TileSize) * 0.42
	if e.Dying() {
		// 死亡动画从第 7 列开始
		frame := e.Sprite().Col - 7
		radius *= float32(4-frame) / 4
		info.BodyColor = color.RGBA{160, 160, 160, info.BodyColor.A}
	}
	if radius <= 0 {
		return
	}
	cx := px + core.TileSize/2
	cy := py + core.TileSize/2
	vector.FillCircle(screen, cx, cy, radius, info.BodyColor, false)
	vector.StrokeCircle(screen, cx, cy, radius, 2, info.OutlineColor, false)
	if !e.Dying() {
		d := radius * 2 / 0.7
		drawEyes(screen, cx-d/2, cy-d/2, d, d, e.Facing())
	}
}

func drawEyes(screen *ebiten.Image, drawX, drawY, bodyWidth, bodyHeight float32, facing core.Direction) {
	eyeSize := bodyWidth * 0.15
	eyeY := drawY + bodyHeight*0.3
	eyeSpacing := bodyWidth * 0.2

	var lx, ly, rx, ry float32
	switch facing {
	case core.DirUp:
		lx, ly = drawX+bodyWidth*0.3, eyeY-2
		rx, ry = drawX+bodyWidth*0.7, eyeY-2
	case core.DirDown:
		lx, ly = drawX+bodyWidth*0.3, eyeY+2
		rx, ry = drawX+bodyWidth*0.7, eyeY+2
	case core.DirLeft:
		lx, ly = drawX+bodyWidth*0.3-eyeSpacing/2, eyeY
		rx, ry = drawX+bodyWidth*0.5-eyeSpacing/2, eyeY
	case core.DirRight:
		lx, ly = drawX+bodyWidth*0.5+eyeSpacing/2, eyeY
		rx, ry = drawX+bodyWidth*0.7+eyeSpacing/2, eyeY
	}

	vector.FillCircle(screen, lx, ly, eyeSize, color.RGBA{255, 255, 255, 255}, false)
	vector.FillCircle(screen, rx, ry, eyeSize, color.RGBA{255, 255, 255, 255}, false)
	pupil := eyeSize * 0.5
	vector.FillCircle(screen, lx, ly, pupil, color.RGBA{0, 0, 0, 255}, false)
	vector.FillCircle(screen, rx, ry, pupil, color.RGBA{0, 0, 0, 255}, false)
}
