// Package source opens import files from local disk or from blob storage.
package source

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/service"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/util"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

// Opener implements service.SourceOpener.
type Opener struct {
	logger *slog.Logger
}

// NewOpener creates an opener.
func NewOpener(logger *slog.Logger) service.SourceOpener {
	return &Opener{logger: logger}
}

// Open returns a reader for a local path or a blob URL such as
// gs://bucket/exports/products.csv or file:///srv/exports/orders.csv.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domainerrors.NewSourceMissingError(location, errors.New("no source location given"))
	}

	if bucketURL, key, ok := splitBlobURL(location); ok {
		return o.openBlob(ctx, location, bucketURL, key)
	}

	return o.openFile(location)
}

func (o *Opener) openFile(location string) (io.ReadCloser, error) {
	file, err := os.Open(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domainerrors.NewSourceMissingError(location, err)
		}

		return nil, errors.Wrapf(err, "failed to open %s", location)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()

		return nil, errors.Wrapf(err, "failed to stat %s", location)
	}
	if info.IsDir() {
		file.Close()

		return nil, domainerrors.NewSourceMissingError(location, errors.Errorf("%s is a directory", location))
	}

	if o.logger != nil && o.logger.Enabled(context.Background(), slog.LevelDebug) {
		checksum, err := util.CalculateFileChecksum(location)
		if err != nil {
			checksum = "unavailable"
		}
		o.logger.Debug("Opened local source",
			slog.String("location", location),
			slog.String("size", util.FormatBytes(info.Size())),
			slog.String("sha256", checksum),
		)
	}

	return file, nil
}

func (o *Opener) openBlob(ctx context.Context, location, bucketURL, key string) (io.ReadCloser, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound || errors.Is(err, fs.ErrNotExist) {
			return nil, domainerrors.NewSourceMissingError(location, err)
		}

		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		bucket.Close()
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.NewSourceMissingError(location, err)
		}

		return nil, errors.Wrapf(err, "failed to read %s", location)
	}

	if o.logger != nil {
		o.logger.Debug("Opened blob source",
			slog.String("location", location),
			slog.String("size", util.FormatBytes(reader.Size())),
		)
	}

	return &blobReadCloser{Reader: reader, bucket: bucket}, nil
}

// blobReadCloser closes the bucket together with the object reader.
type blobReadCloser struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (r *blobReadCloser) Close() error {
	return errors.Join(r.Reader.Close(), r.bucket.Close())
}

// splitBlobURL splits a blob URL into the bucket URL and the object key.
// file:// URLs use the parent directory as the bucket.
func splitBlobURL(location string) (bucketURL, key string, ok bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// A one-letter scheme is a Windows drive letter.
		return "", "", false
	}

	switch u.Scheme {
	case "file":
		dir, name := path.Split(u.Path)
		if name == "" {
			return "", "", false
		}
		bucket := url.URL{Scheme: "file", Path: dir, RawQuery: u.RawQuery}

		return bucket.String(), name, true
	default:
		key = strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return "", "", false
		}
		bucket := url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}

		return bucket.String(), key, true
	}
}
