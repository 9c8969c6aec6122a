package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DocumentOptions says where uploaded documents live.
// LocalDir is checked first; BaseURL is used when the file is not there.
type DocumentOptions struct {
	LocalDir string
	BaseURL  string
	HTTP     *Options
}

// LocalName maps a storage key to its flat file name in the upload directory.
func LocalName(key string) string {
	return strings.ReplaceAll(key, "/", "_")
}

// Document loads the raw bytes of an uploaded document by storage key.
func Document(ctx context.Context, key string, opts DocumentOptions) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, &Error{Message: "empty document key"}
	}

	if opts.LocalDir != "" {
		path := filepath.Join(opts.LocalDir, LocalName(key))
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return data, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, &Error{URL: path, Message: "failed to read local document", Cause: err}
		}
	}

	if opts.BaseURL == "" {
		return nil, &Error{URL: key, Message: "document not found and no storage URL configured"}
	}

	docURL, err := url.JoinPath(opts.BaseURL, key)
	if err != nil {
		return nil, &Error{URL: key, Message: "invalid storage URL", Cause: err}
	}

	download, err := Get(ctx, docURL, opts.HTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	return download.Body, nil
}
