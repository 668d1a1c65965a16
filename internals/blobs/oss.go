// file: internals/blobs/oss.go
package blobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"bantal_backend/internals/configs"
	"bantal_backend/internals/metrics"
)

// OSSStore: satu object per versi, key <prefix><pointer>/v000001
type OSSStore struct {
	bucket *oss.Bucket
	prefix string
}

func NewOSSStoreFromEnv() (*OSSStore, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	sts := configs.GetEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := configs.GetEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		var se oss.ServiceError
		if errors.As(err, &se) && se.StatusCode == 403 {
			log.Printf("[OSS] warn: skip location check (AccessDenied, bucket=%s)", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	prefix := strings.Trim(configs.GetEnv("ALI_OSS_PREFIX", "documents"), "/")
	if prefix != "" {
		prefix += "/"
	}
	return &OSSStore{bucket: bkt, prefix: prefix}, nil
}

func (s *OSSStore) Driver() string { return "oss" }

func (s *OSSStore) dir(pointer string) string { return s.prefix + pointer + "/" }

func (s *OSSStore) key(pointer string, n int) string {
	return fmt.Sprintf("%sv%06d", s.dir(pointer), n)
}

func (s *OSSStore) Store(ctx context.Context, content []byte, mimeType string) (string, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return "", err
	}
	pointer := uuid.NewString()
	if err := s.put(ctx, s.key(pointer, 1), content, mimeType); err != nil {
		return "", err
	}
	metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
	return pointer, nil
}

func (s *OSSStore) AppendVersion(ctx context.Context, pointer string, content []byte, mimeType string) (int, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return 0, err
	}
	for attempt := 0; attempt < appendRetries; attempt++ {
		infos, err := s.ListVersions(ctx, pointer)
		if err != nil {
			return 0, err
		}
		next := len(infos) + 1
		if len(infos) > 0 {
			next = infos[len(infos)-1].Number + 1
		}
		err = s.put(ctx, s.key(pointer, next), content, mimeType)
		if err == nil {
			metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
			return next, nil
		}
		if !isAlreadyExists(err) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("oss append blob %s: terlalu banyak penulis bersamaan", pointer)
}

func (s *OSSStore) put(ctx context.Context, key string, content []byte, mimeType string) error {
	return s.bucket.PutObject(key, bytes.NewReader(content),
		oss.WithContext(ctx),
		oss.ContentType(mimeType),
		oss.ForbidOverWrite(true),
	)
}

func (s *OSSStore) GetLatestVersion(ctx context.Context, pointer string) (*Version, error) {
	infos, err := s.ListVersions(ctx, pointer)
	if err != nil {
		return nil, err
	}
	latest := infos[len(infos)-1]
	key := s.key(pointer, latest.Number)

	meta, err := s.bucket.GetObjectDetailedMeta(key, oss.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("oss meta %s: %w", key, err)
	}
	body, err := s.bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("oss get %s: %w", key, err)
	}
	defer body.Close()
	content, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	mimeType := meta.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultMime
	}
	return &Version{
		Number:     latest.Number,
		Content:    content,
		MimeType:   mimeType,
		Size:       int64(len(content)),
		UploadedAt: latest.UploadedAt,
	}, nil
}

// ListVersions: urut naik berdasarkan nomor versi
func (s *OSSStore) ListVersions(ctx context.Context, pointer string) ([]VersionInfo, error) {
	var (
		out   []VersionInfo
		token string
	)
	for {
		opts := []oss.Option{oss.WithContext(ctx), oss.Prefix(s.dir(pointer)), oss.MaxKeys(1000)}
		if token != "" {
			opts = append(opts, oss.ContinuationToken(token))
		}
		res, err := s.bucket.ListObjectsV2(opts...)
		if err != nil {
			return nil, fmt.Errorf("oss list %s: %w", pointer, err)
		}
		for _, obj := range res.Objects {
			n, ok := parseVersionKey(strings.TrimPrefix(obj.Key, s.dir(pointer)))
			if !ok {
				continue
			}
			out = append(out, VersionInfo{Number: n, Size: obj.Size, UploadedAt: obj.LastModified.UTC()})
		}
		if !res.IsTruncated {
			break
		}
		token = res.NextContinuationToken
	}
	if len(out) == 0 {
		return nil, notFound(pointer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *OSSStore) Close(ctx context.Context) error { return nil }

func parseVersionKey(name string) (int, bool) {
	if !strings.HasPrefix(name, "v") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, "v"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isAlreadyExists(err error) bool {
	var se oss.ServiceError
	if errors.As(err, &se) {
		return se.StatusCode == 409 || se.Code == "FileAlreadyExists"
	}
	return false
}

