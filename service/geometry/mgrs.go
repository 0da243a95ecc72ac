package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/airbusgeo/s2cogs/common"
	"github.com/go-spatial/geom"
)

const squareSize = 100000.0

// Letters of the 100km squares (AA scheme). Columns cycle every three zones, rows every two zones.
var (
	squareColumns = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
	squareRows    = "ABCDEFGHJKLMNPQRSTUV"
)

// LocateTile returns the MGRS 100km square (i.e. the Sentinel-2 tile) containing the point (longitude, latitude)
func LocateTile(p geom.Point) (common.Tile, error) {
	u, err := ToUTM(p)
	if err != nil {
		return common.Tile{}, fmt.Errorf("LocateTile.%w", err)
	}
	return u.Tile(), nil
}

// Tile returns the MGRS 100km square of the UTM coordinates
func (u UTM) Tile() common.Tile {
	col := int(math.Floor(u.Easting / squareSize))
	col = min(max(col, 1), 8)
	row := int(math.Floor(u.Northing/squareSize)) % len(squareRows)
	if u.Zone%2 == 0 {
		row = (row + 5) % len(squareRows)
	}
	columns := squareColumns[(u.Zone-1)%3]
	return common.Tile{
		Zone:         u.Zone,
		LatitudeBand: u.LatitudeBand,
		Square:       columns[col-1:col] + squareRows[row:row+1],
	}
}

const gridCells = 10

// PointInTile draws the position of the point (longitude, latitude) inside its 100km square:
// a grid of 10x10 cells framed by '#', north up, the cell containing the point is marked with 'X'.
func PointInTile(p geom.Point) (string, error) {
	u, err := ToUTM(p)
	if err != nil {
		return "", fmt.Errorf("PointInTile.%w", err)
	}
	return u.grid(), nil
}

func (u UTM) grid() string {
	col := int(math.Mod(u.Easting, squareSize) / squareSize * gridCells)
	row := gridCells - 1 - int(math.Mod(u.Northing, squareSize)/squareSize*gridCells)

	border := strings.Repeat("#", gridCells+2) + "\n"
	sb := strings.Builder{}
	sb.WriteString(border)
	for y := 0; y < gridCells; y++ {
		sb.WriteByte('#')
		for x := 0; x < gridCells; x++ {
			if y == row && x == col {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("#\n")
	}
	sb.WriteString(border)
	return sb.String()
}
