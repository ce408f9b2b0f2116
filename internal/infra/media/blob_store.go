package media

import (
	"context"
	"io"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by media.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStore keeps attachments in any gocloud.dev bucket (file, mem, s3, gs).
type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// OpenBlobStore opens the bucket behind bucketURL.
func OpenBlobStore(ctx context.Context, bucketURL, baseURL string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket, baseURL: baseURL}, nil
}

func (s *blobStore) Put(ctx context.Context, data []byte, contentType, filename string) (*service.MediaObject, error) {
	key := ObjectKey(data, contentType, filename)
	obj := &service.MediaObject{
		Key:         key,
		URL:         publicURL(s.baseURL, key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}
	if exists {
		return obj, nil
	}

	// IfNotExist settles concurrent puts of the same bytes: exactly one of them creates the object.
	err = s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType, IfNotExist: true})
	if gcerrors.Code(err) == gcerrors.FailedPrecondition {
		return obj, nil
	}
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}
	obj.Created = true

	return obj, nil
}

func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.MediaObject, error) {
	if !ValidKey(key) {
		return nil, nil, domainerrors.ErrMediaNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrMediaNotFound
		}

		return nil, nil, errors.Wrapf(err, "failed to open media %s", key)
	}

	return reader, &service.MediaObject{
		Key:         key,
		URL:         publicURL(s.baseURL, key),
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete media %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return s.bucket.Close()
}
