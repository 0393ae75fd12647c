package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bomberclassic/pkg/core"
)

var (
	hudBackground = color.RGBA{200, 200, 200, 255}
	hudFace       = text.NewGoXFace(basicfont.Face7x13)
	hudScale      = 2.0
)

// hudStrings 记分栏的三段文字：剩余时间、分数、生命
func hudStrings(g *core.Game) [3]string {
	return [3]string{
		fmt.Sprintf("TIME %d", max(g.TimeLeft(), 0)/core.TickRate),
		fmt.Sprintf("%d", g.Score()),
		fmt.Sprintf("LEFT %d", max(g.Player().Lives(), 0)),
	}
}

// drawHUD 顶部记分栏，文字带阴影
func drawHUD(screen *ebiten.Image, g *core.Game, paused bool) {
	vector.DrawFilledRect(screen, 0, 0, core.WindowWidth, core.HUDHeight, hudBackground, false)

	strs := hudStrings(g)
	for i, s := range strs {
		w, _ := text.Measure(s, hudFace, 0)
		w *= hudScale
		var x float64
		switch i {
		case 0:
			x = core.TileSize / 2
		case 1:
			x = (core.WindowWidth - w) / 2
		case 2:
			x = core.WindowWidth - core.TileSize/2 - w
		}
		drawText(screen, s, x+3, core.TileSize/2+1, color.Black)
		drawText(screen, s, x, core.TileSize/2, color.White)
	}

	if paused {
		s := "PAUSED"
		w, _ := text.Measure(s, hudFace, 0)
		drawText(screen, s, (core.WindowWidth-w*hudScale)/2, core.WindowHeight/2, color.White)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}
