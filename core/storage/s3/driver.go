package s3

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blobgate/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/text/encoding/htmlindex"
)

func init() {
	storage.Register("s3", func(cfg storage.Config) (storage.Driver, error) {
		return New(cfg)
	})
}

// API is the slice of the MinIO client the driver depends on. It exists so
// tests can substitute a mock backend (see the mocks subpackage).
type API interface {
	// StatObject fetches object metadata without the body.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// GetObject opens the object body for reading.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// CopyObject performs a server-side copy.
	CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
	// RemoveObject deletes an object.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// PresignedGetObject signs a time-limited retrieval URL.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	// ListPage fetches one page of a ListObjectsV2 listing.
	ListPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (minio.ListBucketV2Result, error)
}

// Driver adapts a MinIO/S3 backend to the generic storage contract. It holds
// one connection handle and one bucket name, both fixed at construction.
type Driver struct {
	api    API
	bucket string
}

var _ storage.Driver = (*Driver)(nil)

// New creates a driver bound to the bucket in cfg. No network I/O happens
// here; the MinIO client connects lazily on first use.
func New(cfg storage.Config) (*Driver, error) {
	// MinIO expects the endpoint without a scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict connection-phase timeouts; per-call deadlines come from the
	// caller's context.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	core, err := minio.NewCore(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return NewWithAPI(&coreWrapper{core}, cfg.Bucket), nil
}

// NewWithAPI creates a driver on top of an existing backend API. Used by New
// and by tests.
func NewWithAPI(api API, bucket string) *Driver {
	return &Driver{api: api, bucket: bucket}
}

// Bucket returns the bucket name the driver is bound to.
func (d *Driver) Bucket() string { return d.bucket }

// Copy issues a server-side copy using bucket/src as the copy source.
func (d *Driver) Copy(ctx context.Context, src, dest string) (*storage.CopyResponse, error) {
	info, err := d.api.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: d.bucket, Object: dest},
		minio.CopySrcOptions{Bucket: d.bucket, Object: src},
	)
	if err != nil {
		return nil, d.translate(err, src)
	}
	return &storage.CopyResponse{Raw: info}, nil
}

// Move copies src to dest, then deletes src. Not atomic: a delete failure
// after a successful copy leaves both objects in place, and the returned
// error is the delete step's. A copy failure leaves src untouched.
func (d *Driver) Move(ctx context.Context, src, dest string) (*storage.MoveResponse, error) {
	if _, err := d.Copy(ctx, src, dest); err != nil {
		return nil, err
	}
	if _, err := d.Delete(ctx, src); err != nil {
		return nil, err
	}
	return &storage.MoveResponse{}, nil
}

// Delete removes the object at location. WasDeleted stays nil because the
// backend does not report prior existence.
func (d *Driver) Delete(ctx context.Context, location string) (*storage.DeleteResponse, error) {
	if err := d.api.RemoveObject(ctx, d.bucket, location, minio.RemoveObjectOptions{}); err != nil {
		return nil, d.translate(err, location)
	}
	return &storage.DeleteResponse{}, nil
}

// Exists probes the object's metadata. A 404 from the backend means the
// object is absent and is not an error; anything else is translated.
func (d *Driver) Exists(ctx context.Context, location string) (*storage.ExistsResponse, error) {
	info, err := d.api.StatObject(ctx, d.bucket, location, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.StatusCode == http.StatusNotFound {
			return &storage.ExistsResponse{Exists: false, Raw: resp}, nil
		}
		return nil, d.translate(err, location)
	}
	return &storage.ExistsResponse{Exists: true, Raw: info}, nil
}

// Get reads the full object body and decodes it with the named charset
// (IANA name, default utf-8). The charset is resolved before any network I/O.
func (d *Driver) Get(ctx context.Context, location, encoding string) (*storage.TextResponse, error) {
	name := encoding
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}

	buf, err := d.GetBuffer(ctx, location)
	if err != nil {
		return nil, err
	}

	decoded, err := enc.NewDecoder().Bytes(buf.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q as %s: %w", location, name, err)
	}
	return &storage.TextResponse{Content: string(decoded), Raw: buf.Raw}, nil
}

// GetBuffer reads the full object body as raw bytes.
func (d *Driver) GetBuffer(ctx context.Context, location string) (*storage.ContentResponse, error) {
	body, err := d.api.GetObject(ctx, d.bucket, location, minio.GetObjectOptions{})
	if err != nil {
		return nil, d.translate(err, location)
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		// The MinIO client defers request errors to the first read
		return nil, d.translate(err, location)
	}
	return &storage.ContentResponse{Content: content, Raw: body}, nil
}

// GetStat derives size and last-modified from the object's metadata.
func (d *Driver) GetStat(ctx context.Context, location string) (*storage.StatResponse, error) {
	info, err := d.api.StatObject(ctx, d.bucket, location, minio.StatObjectOptions{})
	if err != nil {
		return nil, d.translate(err, location)
	}
	return &storage.StatResponse{Size: info.Size, Modified: info.LastModified, Raw: info}, nil
}

// GetStream hands back the backend's live body stream without buffering.
// Errors the backend defers to read time surface untranslated from Read.
func (d *Driver) GetStream(ctx context.Context, location string) (io.ReadCloser, error) {
	body, err := d.api.GetObject(ctx, d.bucket, location, minio.GetObjectOptions{})
	if err != nil {
		return nil, d.translate(err, location)
	}
	return body, nil
}

// Put writes or overwrites the object at location. The write is awaited and
// its failure returned; content length is unknown so the client streams.
func (d *Driver) Put(ctx context.Context, location string, content io.Reader) (*storage.PutResponse, error) {
	info, err := d.api.PutObject(ctx, d.bucket, location, content, -1, minio.PutObjectOptions{})
	if err != nil {
		return nil, d.translate(err, location)
	}
	return &storage.PutResponse{Raw: info}, nil
}

// GetSignedURL signs a time-limited retrieval URL for location. Signing is
// local; no object I/O happens.
func (d *Driver) GetSignedURL(ctx context.Context, location string, opts storage.SignedURLOptions) (*storage.SignedURLResponse, error) {
	expiry := opts.ExpiresIn
	if expiry <= 0 {
		expiry = storage.DefaultSignedURLExpiry
	}
	u, err := d.api.PresignedGetObject(ctx, d.bucket, location, expiry, nil)
	if err != nil {
		return nil, d.translate(err, location)
	}
	return &storage.SignedURLResponse{SignedURL: u.String(), Raw: u}, nil
}

// coreWrapper adapts *minio.Core to the API interface: GetObject is narrowed
// to io.ReadCloser, ListPage pins down the ListObjectsV2 paging arguments, and
// PutObject/CopyObject delegate to the high-level client (Core shadows both
// with low-level multipart variants).
type coreWrapper struct {
	*minio.Core
}

func (c *coreWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

func (c *coreWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return c.Client.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (c *coreWrapper) CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error) {
	return c.Client.CopyObject(ctx, dst, src)
}

func (c *coreWrapper) ListPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (minio.ListBucketV2Result, error) {
	return c.Core.ListObjectsV2(bucketName, prefix, "", continuationToken, "", maxKeys)
}
