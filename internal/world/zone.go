package world

import (
	"math"

	"github.com/riptide/server/internal/data"
)

// Zone is the live geometry of one zone. Grids start as copies of the static
// definition and are mutated only through the map-edit path.
type Zone struct {
	ID      int
	Name    string
	Width   int // tiles
	Height  int
	Ground  [][]int
	Deco    [][]int
	Portals []data.PortalDef
}

// NewZone copies a zone definition into mutable runtime state.
func NewZone(def *data.ZoneDef) *Zone {
	z := &Zone{
		ID:      def.ID,
		Name:    def.Name,
		Width:   def.Width,
		Height:  def.Height,
		Ground:  make([][]int, def.Height),
		Deco:    make([][]int, def.Height),
		Portals: append([]data.PortalDef(nil), def.Portals...),
	}
	for y := 0; y < def.Height; y++ {
		z.Ground[y] = append([]int(nil), def.Ground[y]...)
		z.Deco[y] = append([]int(nil), def.Deco[y]...)
	}
	return z
}

// PixelWidth returns the zone width in world units.
func (z *Zone) PixelWidth() float64 { return float64(z.Width * TileSize) }

// PixelHeight returns the zone height in world units.
func (z *Zone) PixelHeight() float64 { return float64(z.Height * TileSize) }

// groundBlocks reports whether a ground tile id is a wall: tiles drawn from
// even tilesheet rows block.
func groundBlocks(id int) bool {
	return (id/SheetColumns+1)%2 == 0
}

// decoBlocks reports whether a decoration tile id blocks. 0 is empty and
// odd deco rows are passable canopy.
func decoBlocks(id int) bool {
	if id == 0 {
		return false
	}
	return ((id-1)/SheetColumns+1)%2 == 0
}

// TileBlocking reports whether the tile under a world coordinate blocks
// movement. Out-of-bounds coordinates always block.
func (z *Zone) TileBlocking(x, y float64) bool {
	tx := int(math.Floor(x / TileSize))
	ty := int(math.Floor(y / TileSize))
	if tx < 0 || ty < 0 || tx >= z.Width || ty >= z.Height {
		return true
	}
	if groundBlocks(z.Ground[ty][tx]) {
		return true
	}
	return decoBlocks(z.Deco[ty][tx])
}

// CircleBlocked tests the four corners of the circle's bounding square
// against blocking tiles.
func (z *Zone) CircleBlocked(x, y, radius float64) bool {
	return z.TileBlocking(x-radius, y-radius) ||
		z.TileBlocking(x+radius, y-radius) ||
		z.TileBlocking(x-radius, y+radius) ||
		z.TileBlocking(x+radius, y+radius)
}

// Clamp keeps a circle of the given radius inside the zone bounds.
func (z *Zone) Clamp(x, y, radius float64) (float64, float64) {
	x = math.Max(radius, math.Min(z.PixelWidth()-radius, x))
	y = math.Max(radius, math.Min(z.PixelHeight()-radius, y))
	return x, y
}

// SlideMove attempts to move a circle by (dx,dy), resolving the X and Y
// axes independently so entities slide along walls instead of sticking.
// offY shifts the collision circle below the logical position (player foot
// circle); pass 0 for mobs. Returns the new position and whether each axis
// actually moved.
func (z *Zone) SlideMove(x, y, dx, dy, radius, offY float64) (nx, ny float64, movedX, movedY bool) {
	nx, ny = x, y
	if dx != 0 {
		tx := nx + dx
		if !z.CircleBlocked(tx, ny+offY, radius) {
			nx = tx
			movedX = true
		}
	}
	if dy != 0 {
		ty := ny + dy
		if !z.CircleBlocked(nx, ty+offY, radius) {
			ny = ty
			movedY = true
		}
	}
	// Keep the collision circle inside the zone bounds.
	nx = math.Max(radius, math.Min(z.PixelWidth()-radius, nx))
	ny = math.Max(radius-offY, math.Min(z.PixelHeight()-radius-offY, ny))
	return nx, ny, movedX, movedY
}

// PortalAt returns the portal on the given tile, or nil.
func (z *Zone) PortalAt(tx, ty int) *data.PortalDef {
	for i := range z.Portals {
		if z.Portals[i].X == tx && z.Portals[i].Y == ty {
			return &z.Portals[i]
		}
	}
	return nil
}

// PortalTo returns the first portal leading to the given zone, or nil.
// Used to place a transferred player next to the return doorway.
func (z *Zone) PortalTo(destZone int) *data.PortalDef {
	for i := range z.Portals {
		if z.Portals[i].DestZone == destZone {
			return &z.Portals[i]
		}
	}
	return nil
}

// InBounds reports whether a tile index is inside the zone.
func (z *Zone) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < z.Width && ty < z.Height
}
