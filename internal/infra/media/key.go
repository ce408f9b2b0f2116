// Package media stores post attachments in an object store under content-addressed keys.
package media

import (
	"crypto/sha256"
	"encoding/hex"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	keyPattern = regexp.MustCompile(`^[a-f0-9]{64}(\.[a-z0-9]{1,8})?$`)
	extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)
)

// ObjectKey derives the storage key from the content hash. Identical uploads share one object.
func ObjectKey(data []byte, contentType, filename string) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]) + extension(contentType, filename)
}

// ValidKey reports whether key could have been produced by ObjectKey.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

func extension(contentType, filename string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); extPattern.MatchString(ext) {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		if ext := strings.ToLower(exts[0]); extPattern.MatchString(ext) {
			return ext
		}
	}

	return ""
}

// publicURL joins the configured public prefix and the key.
func publicURL(baseURL, key string) string {
	if baseURL == "" {
		return "/media/" + key
	}

	return strings.TrimRight(baseURL, "/") + "/" + key
}
