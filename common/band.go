package common

import "fmt"

//go:generate go run github.com/dmarkham/enumer -json -type Band -trimprefix Band

// Band is a raster asset available for each scene of the Sentinel-2 L2A COG collection
type Band int

const (
	BandTCI Band = iota // True Color Image
	BandB01             // Coastal aerosol, 60m
	BandB02             // Blue, 10m
	BandB03             // Green, 10m
	BandB04             // Red, 10m
	BandB05             // Vegetation red edge, 20m
	BandB06             // Vegetation red edge, 20m
	BandB07             // Vegetation red edge, 20m
	BandB08             // NIR, 10m
	BandB8A             // Narrow NIR, 20m
	BandB09             // Water vapour, 60m
	BandB11             // SWIR, 20m
	BandB12             // SWIR, 20m
	BandAOT             // Aerosol Optical Thickness
	BandWVP             // Water Vapour
	BandSCL             // Scene Classification
)

// ErrUnknownBand is returned by ParseBands when a name is not a Band
type ErrUnknownBand struct {
	Name string
}

func (e ErrUnknownBand) Error() string {
	return fmt.Sprintf("%s is not a valid product", e.Name)
}

// ParseBands converts a list of band names (case-insensitive) to Bands
func ParseBands(names []string) ([]Band, error) {
	bands := make([]Band, 0, len(names))
	for _, name := range names {
		b, err := BandString(name)
		if err != nil {
			return nil, ErrUnknownBand{Name: name}
		}
		bands = append(bands, b)
	}
	return bands, nil
}
