// Package assets resolves static files (integration logos) to their public bucket URLs.
package assets

import (
	"errors"
	"net/url"
	"strings"
)

const storageHost = "https://storage.googleapis.com"

var ErrBucketRequired = errors.New("static files bucket is not configured (set STATIC_FILES_BUCKET or NEXT_PUBLIC_STATIC_FILES_BUCKET)")

type Resolver struct {
	bucket string
}

func NewResolver(bucket string) (*Resolver, error) {
	bucket = strings.Trim(strings.TrimSpace(bucket), "/")
	if bucket == "" {
		return nil, ErrBucketRequired
	}
	return &Resolver{bucket: bucket}, nil
}

func (r *Resolver) Bucket() string {
	return r.bucket
}

// URL returns the public URL of a file under the bucket's static/ prefix.
func (r *Resolver) URL(fileName string) string {
	fileName = strings.TrimLeft(strings.TrimSpace(fileName), "/")
	if r == nil || fileName == "" {
		return ""
	}
	return storageHost + "/" + url.PathEscape(r.bucket) + "/static/" + escapeFile(fileName)
}

func escapeFile(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
