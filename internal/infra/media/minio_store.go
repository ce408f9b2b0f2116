package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioStore keeps attachments in an S3 compatible bucket.
type minioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore creates the client. The bucket is checked by EnsureBucket.
func NewMinioStore(cfg *config.MinioConfig, baseURL string) (*minioStore, error) {
	if cfg == nil || cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket must be configured")
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "http://"), "https://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	return &minioStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *minioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "failed to check media bucket")
	}
	if exists {
		return nil
	}

	return errors.Wrap(s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}), "failed to create media bucket")
}

func (s *minioStore) Put(ctx context.Context, data []byte, contentType, filename string) (*service.MediaObject, error) {
	key := ObjectKey(data, contentType, filename)
	obj := &service.MediaObject{
		Key:         key,
		URL:         publicURL(s.baseURL, key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return obj, nil
	}
	if !isMinioNotFound(err) {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	opts.SetMatchETagExcept("*")

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts)
	if isMinioPreconditionFailed(err) {
		// Another request stored the same bytes first.
		return obj, nil
	}
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}
	obj.Created = true

	return obj, nil
}

func (s *minioStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.MediaObject, error) {
	if !ValidKey(key) {
		return nil, nil, domainerrors.ErrMediaNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open media %s", key)
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isMinioNotFound(err) {
			return nil, nil, domainerrors.ErrMediaNotFound
		}

		return nil, nil, errors.Wrapf(err, "failed to stat media %s", key)
	}

	return obj, &service.MediaObject{
		Key:         key,
		URL:         publicURL(s.baseURL, key),
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

func (s *minioStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !isMinioNotFound(err) {
		return errors.Wrapf(err, "failed to delete media %s", key)
	}

	return nil
}

func isMinioPreconditionFailed(err error) bool {
	if err == nil {
		return false
	}
	resp := minio.ToErrorResponse(err)

	return resp.StatusCode == http.StatusPreconditionFailed || resp.Code == minio.PreconditionFailed
}

func isMinioNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)

	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}
