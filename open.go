package gnpthreshold

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Open returns a reader over the results file at path. Paths beginning with
// gs:// are read from Google Storage, which requires a non-nil client; '~/' is
// expanded to the user's home directory. Compressed inputs are detected by
// their leading bytes and decompressed on the fly.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	raw, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}

	rdr, err := MaybeDecompress(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &stackedReadCloser{Reader: rdr, closers: []io.Closer{rdr, raw}}, nil
}

// MaybeOpenFromGoogleStorage opens path from Google Storage if it has a gs://
// prefix and a client was provided, or from the local filesystem otherwise.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a storage client is required to read from Google Storage", path)
		}

		// Detect the bucket and the path to the actual file
		bucketName, objectName, err := splitGSPath(path)
		if err != nil {
			return nil, err
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

func splitGSPath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// stackedReadCloser reads from the outermost reader and closes every layer,
// innermost last.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
