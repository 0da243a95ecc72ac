package common

import (
	"fmt"
	"strconv"
	"strings"
)

// LatitudeBands are the UTM latitude band letters, from 80°S to 84°N by 8° steps (X is 12°)
const LatitudeBands = "CDEFGHJKLMNPQRSTUVWX"

// Tile is the identifier of a Sentinel-2 tile, i.e. a MGRS 100km square (e.g. 32UNF)
type Tile struct {
	Zone         int    // UTM zone [1-60]
	LatitudeBand string // one of C-X (I and O excluded)
	Square       string // two letters identifying the 100km square in the zone
}

func (t Tile) String() string {
	return fmt.Sprintf("%d%s%s", t.Zone, t.LatitudeBand, t.Square)
}

// Info returns the identifiers of the tile, to be used with FormatBrackets
func (t Tile) Info() map[string]string {
	return map[string]string{
		"TILE":          t.String(),
		"ZONE":          strconv.Itoa(t.Zone),
		"LATITUDE_BAND": t.LatitudeBand,
		"GRID_SQUARE":   t.Square,
	}
}

// ParseTile parses a tile identifier such as "32UNF", "T32UNF" or "04QFJ"
func ParseTile(s string) (Tile, error) {
	s = strings.TrimPrefix(strings.ToUpper(s), "T")
	if len(s) != 4 && len(s) != 5 {
		return Tile{}, fmt.Errorf("invalid tile: %s", s)
	}
	n := len(s) - 3
	zone, err := strconv.Atoi(s[:n])
	if err != nil || zone < 1 || zone > 60 {
		return Tile{}, fmt.Errorf("invalid tile zone: %s", s)
	}
	if !strings.Contains(LatitudeBands, s[n:n+1]) {
		return Tile{}, fmt.Errorf("invalid tile latitude band: %s", s)
	}
	for _, c := range s[n+1:] {
		if c < 'A' || c > 'Z' || c == 'I' || c == 'O' {
			return Tile{}, fmt.Errorf("invalid tile grid square: %s", s)
		}
	}
	return Tile{Zone: zone, LatitudeBand: s[n : n+1], Square: s[n+1:]}, nil
}
