package common

import "time"

// Scene is one acquisition of the COG collection: a directory holding one
// GeoTIFF per band and a <Name>.json metadata file.
type Scene struct {
	Name       string    `json:"name"`        // S2A_32UNF_20200101_0_L2A
	Key        string    `json:"key"`         // key of the scene directory in the bucket, without trailing slash
	Date       time.Time `json:"date"`        // acquisition date (UTC midnight)
	CloudCover float64   `json:"cloud_cover"` // percentage [0-100]
}

// MetadataKey returns the key of the STAC item describing the scene
func (s Scene) MetadataKey() string {
	return s.Key + "/" + s.Name + ".json"
}

// BandKey returns the key of the GeoTIFF of the given band
func (s Scene) BandKey(b Band) string {
	return s.Key + "/" + b.String() + ".tif"
}

// BandFileName returns the local file name of the given band
func (s Scene) BandFileName(b Band) string {
	return s.Name + "_" + b.String() + ".tif"
}
