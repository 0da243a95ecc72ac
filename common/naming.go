package common

import (
	"fmt"
	"strings"
	"time"
)

const sceneDateLayout = "20060102"

// Info returns the identifiers found in the name of a scene of the COG collection.
// MMM_ZZBSS_YYYYMMDD_N_LLL (e.g. S2A_32UNF_20200101_0_L2A)
// Keys: SCENE, MISSION_ID, DATE(YEAR/MONTH/DAY), SEQUENCE, PRODUCT_LEVEL, TILE (ZONE/LATITUDE_BAND/GRID_SQUARE)
func Info(sceneName string) (map[string]string, error) {
	parts := strings.Split(sceneName, "_")
	if len(parts) < 3 || len(parts[2]) != len(sceneDateLayout) {
		return nil, fmt.Errorf("invalid Sentinel2 COG scene name: %s", sceneName)
	}
	date := parts[2]
	info := map[string]string{
		"SCENE":      sceneName,
		"MISSION_ID": parts[0],
		"DATE":       date,
		"YEAR":       date[0:4],
		"MONTH":      date[4:6],
		"DAY":        date[6:8],
	}
	if tile, err := ParseTile(parts[1]); err == nil {
		for k, v := range tile.Info() {
			info[k] = v
		}
	}
	if len(parts) > 3 {
		info["SEQUENCE"] = parts[3]
	}
	if len(parts) > 4 {
		info["PRODUCT_LEVEL"] = parts[4]
	}
	return info, nil
}

// GetDateFromSceneName returns the acquisition date of the scene (UTC midnight)
func GetDateFromSceneName(sceneName string) (time.Time, error) {
	format, err := Info(sceneName)
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.Parse(sceneDateLayout, format["DATE"])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date in scene name %s: %w", sceneName, err)
	}
	return date, nil
}

/**
 * FormatBrackets replaces in <str> all {keys} of <info> by the corresponding value
 * keys are the ones returned by Info() or Tile.Info(), plus any custom key
 */
func FormatBrackets(str string, infos ...map[string]string) string {
	for _, info := range infos {
		for k, v := range info {
			str = strings.ReplaceAll(str, "{"+k+"}", v)
		}
	}
	return str
}
