// Package assets loads tileset spritesheets and slices tile frames out of
// them. A tileset is addressed by index, left to right then top to bottom,
// matching how Sprite Fusion numbers its spritesheet.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type Tileset struct {
	Image    *ebiten.Image
	TileSize int
	Columns  int

	frameCache map[int]*ebiten.Image
}

// FrameRect returns the source rectangle of a tile index in a sheet with
// the given layout. Negative indexes map to tile 0.
func FrameRect(index, tileSize, columns int) image.Rectangle {
	if index < 0 || columns <= 0 {
		index = 0
	}
	col := 0
	row := 0
	if columns > 0 {
		col = index % columns
		row = index / columns
	}
	x := col * tileSize
	y := row * tileSize
	return image.Rect(x, y, x+tileSize, y+tileSize)
}

func NewTileset(img *ebiten.Image, tileSize int) *Tileset {
	columns := 0
	if tileSize > 0 {
		columns = img.Bounds().Dx() / tileSize
	}
	return &Tileset{
		Image:      img,
		TileSize:   tileSize,
		Columns:    columns,
		frameCache: make(map[int]*ebiten.Image),
	}
}

// LoadTileset reads a spritesheet image from fsys.
func LoadTileset(fsys fs.FS, path string, tileSize int) (*Tileset, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read tileset %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode tileset %s: %w", path, err)
	}
	return NewTileset(img, tileSize), nil
}

// MustLoadTileset is LoadTileset for embedded assets that are known good.
func MustLoadTileset(fsys fs.FS, path string, tileSize int) *Tileset {
	t, err := LoadTileset(fsys, path, tileSize)
	if err != nil {
		panic(fmt.Sprintf("Failed to load tileset %s: %v", path, err))
	}
	return t
}

// Frame returns the cached sub-image for a tile index. Caching prevents
// creating duplicate *ebiten.Image structs for the same frame.
func (t *Tileset) Frame(index int) *ebiten.Image {
	if img, ok := t.frameCache[index]; ok {
		return img
	}
	frame := t.Image.SubImage(FrameRect(index, t.TileSize, t.Columns)).(*ebiten.Image)
	t.frameCache[index] = frame
	return frame
}
