// Package client 是基于 Ebiten 的窗口前端
package client

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bomberclassic/internal/logging"
	"bomberclassic/pkg/core"
)

// ErrQuit 玩家按 Esc 退出
var ErrQuit = errors.New("quit")

// Refresher 每帧需要先刷新的输入来源（例如自动驾驶）
type Refresher interface {
	Refresh()
}

// Options 前端参数
type Options struct {
	Input  core.InputSource // 为空时使用键盘
	Sheet  SpriteSheet      // 为空时使用矢量绘制
	Logger *log.Logger
}

// Game Ebiten 游戏循环
type Game struct {
	core   *core.Game
	input  core.InputSource
	sheet  SpriteSheet
	logger *log.Logger
	paused bool

	field *ebiten.Image // 整个场地，按摄像机偏移贴到窗口
}

// NewGame 包装核心游戏
func NewGame(g *core.Game, opts Options) *Game {
	in := opts.Input
	if in == nil {
		in = Keyboard{Scheme: ControlWASD}
	}
	return &Game{
		core:   g,
		input:  in,
		sheet:  opts.Sheet,
		logger: opts.Logger,
		field:  ebiten.NewImage(core.FieldWidth, core.FieldHeight),
	}
}

// Update 推进一帧
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if r, ok := g.input.(Refresher); ok {
		r.Refresh()
	}
	if err := g.core.Update(core.PollInput(g.input)); err != nil {
		if g.logger != nil {
			g.logger.Error("游戏更新失败", "err", err)
		}
		return err
	}
	if g.logger != nil {
		logging.LogEvents(g.logger, g.core.Events())
	}
	return nil
}

// Draw 绘制场地和记分栏
func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Fill(FieldColor)
	tick := g.core.Tick()
	for s := range g.core.Sprites() {
		r := s.Bounds()
		px, py := float32(r.X), float32(r.Y)
		if g.sheet != nil {
			c := s.Sprite()
			op := &ebiten.DrawImageOptions{GeoM: spriteGeoM(float64(r.X), float64(r.Y), c.Rotation)}
			g.field.DrawImage(g.sheet.ImageAt(c), op)
			continue
		}
		switch e := s.(type) {
		case *core.HardBlock:
			drawHard(g.field, px, py)
		case *core.SoftBlock:
			drawSoft(g.field, px, py, e)
		case *core.Bonus:
			drawBonus(g.field, px, py, e)
		case *core.Bomb:
			drawBomb(g.field, px, py, e, tick)
		case *core.Blast:
			drawBlast(g.field, px, py, e)
		case *core.Enemy:
			drawEnemy(g.field, px, py, e)
		case *core.Player:
			drawPlayer(g.field, px, py, e, tick)
		}
	}

	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(g.core.Camera()), core.HUDHeight)
	screen.DrawImage(g.field, op)
	drawHUD(screen, g.core, g.paused)
}

// Layout 固定逻辑分辨率
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}

// Run 打开窗口运行，Esc 退出不算错误
func Run(g *core.Game, opts Options, scale float64, tps int) error {
	ebiten.SetWindowSize(int(core.WindowWidth*scale), int(core.WindowHeight*scale))
	ebiten.SetWindowTitle("Bomberman")
	ebiten.SetTPS(tps)
	err := ebiten.RunGame(NewGame(g, opts))
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
