package downloader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/airbusgeo/s2cogs/downloader"
	"github.com/airbusgeo/s2cogs/interface/storage"
	"github.com/airbusgeo/s2cogs/service"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Paris is in 31UDQ
const lon, lat = 2.3522, 48.8566

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("Fetch", func() {
	var (
		ctx    context.Context
		bucket *SpyBucket
		folder string
		paths  []string
		err    error
	)

	BeforeEach(func() {
		ctx = context.Background()
		bucket = &SpyBucket{Bucket: storage.NewLocalBucket(fixtureDir)}
		folder, err = os.MkdirTemp("", "s2cogs-out")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(folder)).To(Succeed())
	})

	fetch := func(start, end time.Time, bands []string, opts ...downloader.Option) {
		opts = append([]downloader.Option{downloader.WithFolder(folder), downloader.WithBucket(bucket, collectionRoot)}, opts...)
		paths, err = downloader.Fetch(ctx, lon, lat, start, end, bands, opts...)
	}

	expectInvalidArgument := func(arg string) {
		Expect(err).To(HaveOccurred())
		var invalid service.ErrInvalidArgument
		Expect(errors.As(err, &invalid)).To(BeTrue())
		Expect(invalid.Arg).To(Equal(arg))
		Expect(service.Fatal(err)).To(BeTrue())
		Expect(paths).To(BeNil())
	}

	expectNoIO := func() {
		Expect(bucket.lists).To(Equal(0))
		Expect(bucket.downloads).To(Equal(0))
		entries, err := os.ReadDir(folder)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	}

	Context("with invalid arguments", func() {
		It("should reject a start date after the end date", func() {
			fetch(day(2020, 3, 1), day(2020, 1, 1), []string{"B04"})
			expectInvalidArgument("start_date")
			expectNoIO()
		})

		It("should reject an unknown band", func() {
			fetch(day(2020, 1, 1), day(2020, 1, 31), []string{"B04", "B15"})
			expectInvalidArgument("bands")
			Expect(err.Error()).To(ContainSubstring("B15"))
			expectNoIO()
		})

		It("should reject an empty band list", func() {
			fetch(day(2020, 1, 1), day(2020, 1, 31), nil)
			expectInvalidArgument("bands")
			expectNoIO()
		})

		It("should reject a point outside the tiling", func() {
			paths, err = downloader.Fetch(ctx, lon, 85, day(2020, 1, 1), day(2020, 1, 31), []string{"B04"},
				downloader.WithFolder(folder), downloader.WithBucket(bucket, collectionRoot))
			Expect(err).To(HaveOccurred())
			Expect(service.Fatal(err)).To(BeTrue())
			expectNoIO()
		})
	})

	Context("with a date range without scenes", func() {
		It("should return an empty list", func() {
			fetch(day(2014, 1, 1), day(2015, 1, 31), []string{"B04"})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).NotTo(BeNil())
			Expect(paths).To(BeEmpty())
			Expect(bucket.lists).To(Equal(13))
			Expect(bucket.downloads).To(Equal(0))
		})
	})

	Context("with scenes in range", func() {
		It("should download the qualifying scenes", func() {
			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"B04", "b08"})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(Equal([]string{
				fixtureDir + "/cogs/31/U/DQ/2020/1/S2A_31UDQ_20200103_0_L2A/B04.tif",
				fixtureDir + "/cogs/31/U/DQ/2020/1/S2A_31UDQ_20200103_0_L2A/B08.tif",
				fixtureDir + "/cogs/31/U/DQ/2020/2/S2A_31UDQ_20200202_0_L2A/B04.tif",
				fixtureDir + "/cogs/31/U/DQ/2020/2/S2A_31UDQ_20200202_0_L2A/B08.tif",
			}))
			Expect(bucket.lists).To(Equal(2))

			content, err := os.ReadFile(filepath.Join(folder, "S2A_31UDQ_20200103_0_L2A_B08.tif"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("S2A_31UDQ_20200103_0_L2A:B08"))

			entries, err := os.ReadDir(folder)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(4))
		})

		It("should apply the cloud cover threshold", func() {
			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"TCI"}, downloader.WithMaxCloudCover(80))
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(HaveLen(3))

			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"TCI"}, downloader.WithMaxCloudCover(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(Equal([]string{fixtureDir + "/cogs/31/U/DQ/2020/2/S2A_31UDQ_20200202_0_L2A/TCI.tif"}))
		})

		It("should include the bounds of the date range", func() {
			fetch(day(2020, 1, 3), day(2020, 2, 2), []string{"SCL"})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(HaveLen(2))

			fetch(day(2020, 1, 4), day(2020, 2, 1), []string{"SCL"})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(BeEmpty())
		})

		It("should overwrite existing files", func() {
			localFile := filepath.Join(folder, "S2A_31UDQ_20200202_0_L2A_B04.tif")
			Expect(os.WriteFile(localFile, []byte("a previous and longer content"), 0644)).To(Succeed())

			fetch(day(2020, 2, 1), day(2020, 2, 20), []string{"B04"})
			Expect(err).NotTo(HaveOccurred())
			content, err := os.ReadFile(localFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("S2A_31UDQ_20200202_0_L2A:B04"))
		})

		It("should download into the home directory by default", func() {
			home := os.Getenv("HOME")
			defer os.Setenv("HOME", home)
			Expect(os.Setenv("HOME", folder)).To(Succeed())

			paths, err = downloader.Fetch(ctx, lon, lat, day(2020, 2, 1), day(2020, 2, 20), []string{"B04"},
				downloader.WithBucket(bucket, collectionRoot))
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(HaveLen(1))
			Expect(filepath.Join(folder, "S2A_31UDQ_20200202_0_L2A_B04.tif")).To(BeAnExistingFile())
		})
	})

	Context("with failures", func() {
		It("should propagate listing errors", func() {
			bucket.listErr = errors.New("connection reset")
			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"B04"})
			Expect(err).To(MatchError(bucket.listErr))
			Expect(service.Fatal(err)).To(BeFalse())
			Expect(paths).To(BeNil())
		})

		It("should fail when a band cannot be downloaded", func() {
			bucket.downloadErr = errors.New("access denied")
			bucket.failSuffix = "/B08.tif"
			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"B04", "B08"})
			Expect(err).To(MatchError(bucket.downloadErr))
			Expect(paths).To(BeNil())
		})

		It("should fail when a band does not exist", func() {
			fetch(day(2020, 1, 1), day(2020, 2, 20), []string{"AOT"})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		It("should fail on metadata without cloud cover", func() {
			root, err := os.MkdirTemp("", "s2cogs-fixture")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(root)
			writeScene(root, "31/U/DQ/2021/5", "S2A_31UDQ_20210501_0_L2A", nil, "B04")

			paths, err := downloader.Fetch(ctx, lon, lat, day(2021, 5, 1), day(2021, 5, 31), []string{"B04"},
				downloader.WithFolder(folder), downloader.WithBucket(storage.NewLocalBucket(root), ""))
			Expect(err).To(MatchError(ContainSubstring("eo:cloud_cover")))
			Expect(paths).To(BeNil())
		})

		It("should fail on malformed metadata", func() {
			root, err := os.MkdirTemp("", "s2cogs-fixture")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(root)
			writeScene(root, "31/U/DQ/2021/5", "S2A_31UDQ_20210501_0_L2A", `"cloudy"`, "B04")

			_, err = downloader.Fetch(ctx, lon, lat, day(2021, 5, 1), day(2021, 5, 31), []string{"B04"},
				downloader.WithFolder(folder), downloader.WithBucket(storage.NewLocalBucket(root), ""))
			Expect(err).To(HaveOccurred())
		})
	})
})
