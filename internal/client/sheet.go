package client

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"bomberclassic/pkg/core"
)

// FieldColor 精灵图的背景色，加载时变为透明
var FieldColor = color.RGBA{56, 135, 0, 255}

// SpriteSheet 按精灵坐标取图
type SpriteSheet interface {
	ImageAt(c core.SpriteCoord) *ebiten.Image
}

// Sheet 从 PNG 加载的精灵图，子图按需缓存
type Sheet struct {
	img   *ebiten.Image
	cache map[image.Point]*ebiten.Image
}

// LoadSheet 读取精灵图文件
func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开精灵图 %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("解码精灵图 %s: %w", path, err)
	}
	return &Sheet{
		img:   ebiten.NewImageFromImage(colorKey(src, FieldColor)),
		cache: make(map[image.Point]*ebiten.Image),
	}, nil
}

// ImageAt 取出一格精灵，不处理旋转
func (s *Sheet) ImageAt(c core.SpriteCoord) *ebiten.Image {
	key := image.Pt(c.Col, c.Row)
	if img, ok := s.cache[key]; ok {
		return img
	}
	img := s.img.SubImage(spriteRect(c)).(*ebiten.Image)
	s.cache[key] = img
	return img
}

// spriteRect 精灵在图中的像素区域
func spriteRect(c core.SpriteCoord) image.Rectangle {
	x, y := c.Col*core.TileSize, c.Row*core.TileSize
	return image.Rect(x, y, x+core.TileSize, y+core.TileSize)
}

// colorKey 把 key 颜色的像素变为透明
func colorKey(src image.Image, key color.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R == key.R && c.G == key.G && c.B == key.B {
				dst.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return dst
}

// spriteGeoM 把精灵放到 (x, y)，按 Rotation 逆时针旋转 90° 的倍数
func spriteGeoM(x, y float64, rotation int) ebiten.GeoM {
	var m ebiten.GeoM
	if r := rotation % 4; r != 0 {
		half := float64(core.TileSize) / 2
		m.Translate(-half, -half)
		m.Rotate(-float64(r) * math.Pi / 2)
		m.Translate(half, half)
	}
	m.Translate(x, y)
	return m
}
