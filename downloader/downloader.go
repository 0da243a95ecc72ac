package downloader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/airbusgeo/s2cogs/common"
	"github.com/airbusgeo/s2cogs/interface/storage"
	"github.com/airbusgeo/s2cogs/service"
	"github.com/airbusgeo/s2cogs/service/geometry"
	"github.com/airbusgeo/s2cogs/service/log"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/go-spatial/geom"
	stac "github.com/planetlabs/go-stac"
)

const (
	// DefaultBucketURI is the Sentinel-2 L2A COG collection of the AWS Open Data registry
	DefaultBucketURI = "s3://sentinel-cogs/sentinel-s2-l2a-cogs"
	// DefaultMaxCloudCover is the default maximum cloud cover of a scene (%)
	DefaultMaxCloudCover = 50.0

	prefixTemplate = "{ROOT}/{ZONE}/{LATITUDE_BAND}/{GRID_SQUARE}/{YEAR}/{MONTH}"
)

type options struct {
	maxCloudCover float64
	folder        string
	bucket        storage.Bucket
	root          string
}

// Option is an option that can be passed to Fetch()
type Option func(o *options)

// WithMaxCloudCover sets the maximum cloud cover (%) of the scenes to download (included)
func WithMaxCloudCover(cloudCover float64) Option {
	return func(o *options) {
		o.maxCloudCover = cloudCover
	}
}

// WithFolder sets the local folder where the bands are written. It must exist.
func WithFolder(folder string) Option {
	return func(o *options) {
		o.folder = folder
	}
}

// WithBucket sets the bucket and the root prefix of the collection
func WithBucket(bucket storage.Bucket, root string) Option {
	return func(o *options) {
		o.bucket = bucket
		o.root = root
	}
}

// Fetch downloads the requested bands of all the scenes of the tile containing the point (lon, lat),
// acquired between start and end (included) with a cloud cover lower or equal to the maximum.
// Bands are written to <folder>/<scene>_<band>.tif, overwriting existing files.
// It returns the sorted list of the downloaded objects (<bucket>/<key>).
func Fetch(ctx context.Context, lon, lat float64, start, end time.Time, bands []string, opts ...Option) ([]string, error) {
	o := options{maxCloudCover: DefaultMaxCloudCover}
	for _, opt := range opts {
		opt(&o)
	}

	// Validate the inputs
	if start.After(end) {
		return nil, service.MakeFatal(service.ErrInvalidArgument{
			Arg:    "start_date",
			Value:  start.Format(time.DateOnly),
			Reason: "start_date has to be lower or equal than end_date " + end.Format(time.DateOnly),
		})
	}
	if len(bands) == 0 {
		return nil, service.MakeFatal(service.ErrInvalidArgument{Arg: "bands", Reason: "at least one product is required"})
	}
	requestedBands, err := common.ParseBands(bands)
	if err != nil {
		var unknown common.ErrUnknownBand
		if errors.As(err, &unknown) {
			return nil, service.MakeFatal(service.ErrInvalidArgument{Arg: "bands", Value: unknown.Name, Reason: "not a valid product"})
		}
		return nil, service.MakeFatal(fmt.Errorf("Fetch: %w", err))
	}
	tile, err := geometry.LocateTile(geom.Point{lon, lat})
	if err != nil {
		return nil, service.MakeFatal(fmt.Errorf("Fetch.%w", err))
	}

	// Defaults are resolved at call time
	if o.folder == "" {
		if o.folder, err = os.UserHomeDir(); err != nil {
			return nil, fmt.Errorf("Fetch.UserHomeDir: %w", err)
		}
	}
	if o.bucket == nil {
		if o.bucket, o.root, err = storage.Open(ctx, DefaultBucketURI, storage.Config{}); err != nil {
			return nil, fmt.Errorf("Fetch.%w", err)
		}
	}

	ctx = log.With(ctx, "tile", tile.String())
	start, end = common.Date(start), common.Date(end)
	fetched := []string{}
	for year, month := range common.Months(start, end) {
		prefix := common.FormatBrackets(prefixTemplate, tile.Info(), map[string]string{
			"ROOT":  o.root,
			"YEAR":  strconv.Itoa(year),
			"MONTH": strconv.Itoa(int(month)),
		})
		prefix = strings.TrimPrefix(prefix, "/")

		sceneKeys, err := o.bucket.List(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("Fetch.%w", err)
		}
		log.Logger(ctx).Sugar().Debugf("%d scene(s) in %s/%s", len(sceneKeys), o.bucket.Name(), prefix)

		for _, sceneKey := range sceneKeys {
			scene, err := loadScene(ctx, o.bucket, sceneKey)
			if err != nil {
				return nil, fmt.Errorf("Fetch.%w", err)
			}
			if scene.CloudCover > o.maxCloudCover || scene.Date.Before(start) || scene.Date.After(end) {
				log.Logger(ctx).Sugar().Debugf("skip %s (cloud cover: %.2f%%)", scene.Name, scene.CloudCover)
				continue
			}
			for _, band := range requestedBands {
				localFile := filepath.Join(o.folder, scene.BandFileName(band))
				if err := downloadToFile(ctx, o.bucket, scene.BandKey(band), localFile); err != nil {
					return nil, fmt.Errorf("Fetch.%w", err)
				}
				fetched = append(fetched, path.Join(o.bucket.Name(), scene.BandKey(band)))
			}
		}
	}

	sort.Strings(fetched)
	return fetched, nil
}

// loadScene reads the date of the scene from its name and its cloud cover from its metadata
func loadScene(ctx context.Context, bucket storage.Bucket, sceneKey string) (common.Scene, error) {
	scene := common.Scene{
		Name: path.Base(sceneKey),
		Key:  sceneKey,
	}

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := bucket.Download(ctx, scene.MetadataKey(), buf); err != nil {
		return scene, fmt.Errorf("loadScene.%w", err)
	}
	item := stac.Item{}
	if err := json.Unmarshal(buf.Bytes(), &item); err != nil {
		return scene, fmt.Errorf("loadScene[%s]: invalid metadata: %w", scene.Name, err)
	}
	cloudCover, ok := item.Properties[common.TagCloudCover].(float64)
	if !ok {
		return scene, fmt.Errorf("loadScene[%s]: invalid metadata: missing or non numeric %s", scene.Name, common.TagCloudCover)
	}
	scene.CloudCover = cloudCover

	var err error
	if scene.Date, err = common.GetDateFromSceneName(scene.Name); err != nil {
		return scene, fmt.Errorf("loadScene.%w", err)
	}

	log.Logger(ctx).Sugar().Debugf("scene %s: %v, cloud cover %.2f%%, platform %v", scene.Name, scene.Date.Format(time.DateOnly), scene.CloudCover, item.Properties[common.TagPlatform])
	return scene, nil
}

// downloadToFile writes the object into localPath, overwriting it.
// A partial file is left on failure.
func downloadToFile(ctx context.Context, bucket storage.Bucket, key string, localPath string) error {
	file, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("downloadToFile: failed to create file %s: %w", localPath, err)
	}
	n, err := bucket.Download(ctx, key, file)
	if err != nil {
		file.Close()
		return fmt.Errorf("downloadToFile.%w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("downloadToFile: failed to close file %s: %w", localPath, err)
	}
	log.Logger(ctx).Sugar().Infof("%s downloaded to %s (%s)", key, localPath, fmtBytes(n))
	return nil
}

func fmtBytes(bytes int64) string {
	v := float64(bytes)
	switch {
	case v > 1<<30:
		return fmt.Sprintf("%.2fGo", v/(1<<30))
	case v > 1<<20:
		return fmt.Sprintf("%.2fMo", v/(1<<20))
	case v > 1<<10:
		return fmt.Sprintf("%.2fko", v/(1<<10))
	default:
		return fmt.Sprintf("%.2fo", v)
	}
}
