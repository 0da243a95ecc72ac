package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/airbusgeo/s2cogs/common"
	"github.com/airbusgeo/s2cogs/downloader"
	"github.com/airbusgeo/s2cogs/interface/storage"
	"github.com/airbusgeo/s2cogs/service"
	"github.com/airbusgeo/s2cogs/service/geometry"
	"github.com/araddon/dateparse"
	"github.com/go-spatial/geom"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd(config *config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "s2cogs",
		Short:         "Download Sentinel-2 L2A Cloud-Optimized GeoTIFFs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if msg, found := strings.CutPrefix(err.Error(), "unknown "); found {
			_, option, _ := strings.Cut(msg, ": ")
			return service.MakeFatal(service.ErrUnknownOption{Option: option})
		}
		return service.MakeFatal(service.ErrInvalidArgument{Arg: "flags", Reason: err.Error()})
	})
	rootCmd.AddCommand(newFetchCmd(config), newTileCmd(), newBandsCmd(), newVersionCmd())
	return rootCmd
}

func newFetchCmd(config *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the bands of the scenes of the tile containing a point",
		Long: `Download the bands of all the scenes of the Sentinel-2 tile containing (lon, lat),
acquired between start and end (included), whose cloud cover is lower or equal to cloud-cover.
Each band is written to <folder>/<scene>_<band>.tif and the downloaded objects are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, lat, err := pointFlags(cmd.Flags())
			if err != nil {
				return err
			}
			start, err := dateFlag(cmd.Flags(), "start")
			if err != nil {
				return err
			}
			end, err := dateFlag(cmd.Flags(), "end")
			if err != nil {
				return err
			}
			bands, _ := cmd.Flags().GetStringSlice("band")
			cloudCover, _ := cmd.Flags().GetFloat64("cloud-cover")
			bucketURI, _ := cmd.Flags().GetString("bucket")

			opts := []downloader.Option{downloader.WithMaxCloudCover(cloudCover)}
			if folder, _ := cmd.Flags().GetString("folder"); folder != "" {
				opts = append(opts, downloader.WithFolder(folder))
			}
			bucket, root, err := storage.Open(cmd.Context(), bucketURI, config.storageConfig())
			if err != nil {
				return service.MakeFatal(err)
			}
			opts = append(opts, downloader.WithBucket(bucket, root))

			paths, err := downloader.Fetch(cmd.Context(), lon, lat, start, end, bands, opts...)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	addPointFlags(cmd)
	cmd.Flags().String("start", "", "first acquisition date (included), in any common layout (2020-01-31, 01/31/2020...)")
	cmd.Flags().String("end", "", "last acquisition date (included)")
	cmd.Flags().StringSliceP("band", "b", nil, "band to download (repeatable or comma separated): "+strings.Join(common.BandStrings(), ", "))
	cmd.Flags().Float64("cloud-cover", downloader.DefaultMaxCloudCover, "maximum cloud cover of the scenes (%)")
	cmd.Flags().String("folder", "", "existing folder where the bands are written (default: home directory)")
	cmd.Flags().String("bucket", config.BucketURI, "collection uri: s3://bucket/prefix, gs://bucket/prefix or a local directory")
	return cmd
}

func newTileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Print the tile containing a point and the position of the point in this tile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, lat, err := pointFlags(cmd.Flags())
			if err != nil {
				return err
			}
			tile, err := geometry.LocateTile(geom.Point{lon, lat})
			if err != nil {
				return service.MakeFatal(err)
			}
			grid, err := geometry.PointInTile(geom.Point{lon, lat})
			if err != nil {
				return service.MakeFatal(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tile.String())
			fmt.Fprint(cmd.OutOrStdout(), grid)
			return nil
		},
	}
	addPointFlags(cmd)
	return cmd
}

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the available bands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, b := range common.BandStrings() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("lon", 0, "longitude of the point (WGS84 degrees)")
	cmd.Flags().Float64("lat", 0, "latitude of the point (WGS84 degrees)")
}

func pointFlags(flags *pflag.FlagSet) (float64, float64, error) {
	for _, name := range []string{"lon", "lat"} {
		if !flags.Changed(name) {
			return 0, 0, service.MakeFatal(service.ErrInvalidArgument{Arg: name, Reason: "required"})
		}
	}
	lon, _ := flags.GetFloat64("lon")
	lat, _ := flags.GetFloat64("lat")
	return lon, lat, nil
}

func dateFlag(flags *pflag.FlagSet, name string) (time.Time, error) {
	value, _ := flags.GetString(name)
	if value == "" {
		return time.Time{}, service.MakeFatal(service.ErrInvalidArgument{Arg: name, Reason: "required"})
	}
	date, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, service.MakeFatal(service.ErrInvalidArgument{Arg: name, Value: value, Reason: err.Error()})
	}
	return date, nil
}
