package res

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotImage is returned by LoadImage for resources that are not images.
var ErrNotImage = errors.New("resource is not an image")

// Resource is a loaded input image (or anything else a source points at)
type Resource struct {
	URL      string
	Data     []byte
	MimeType string
}

// IsImage reports whether the resource looks like an image.
func (r *Resource) IsImage() bool {
	return strings.HasPrefix(r.MimeType, "image/")
}

// Loader fetches image sources from disk, HTTP or data URLs.
type Loader struct {
	// Base URL or file path for resolving relative sources
	BaseURL string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string

	client *http.Client
}

// NewLoader creates a new resource loader
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:     baseURL,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{},
	}
}

// SetHTTPClient replaces the client used for remote sources.
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// AddSearchPath adds a directory to search for local sources that are not
// found where they point.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a resource from a URL or file path. Results are cached per
// source string; Load is safe for concurrent use.
func (l *Loader) Load(ctx context.Context, src string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[src]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	var (
		res *Resource
		err error
	)
	switch {
	case strings.HasPrefix(src, "data:"):
		res, err = parseDataURL(src)
	default:
		var resolved string
		resolved, err = l.resolveURL(src)
		if err != nil {
			return nil, err
		}
		if isRemote(resolved) {
			res, err = l.loadRemote(ctx, resolved)
		} else {
			res, err = l.loadLocal(resolved)
		}
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[src] = res
	l.cacheLock.Unlock()

	return res, nil
}

// LoadImage loads a resource and checks that it is an image.
func (l *Loader) LoadImage(ctx context.Context, src string) (*Resource, error) {
	res, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	if !res.IsImage() {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotImage, src, res.MimeType)
	}
	return res, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseDataURL parses a data URL (RFC 2397), e.g.
//
//	data:image/png;base64,<base64>
func parseDataURL(u string) (*Resource, error) {
	s := strings.TrimPrefix(u, "data:")
	meta, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime := ""
	isBase64 := false
	comps := strings.Split(meta, ";")
	if comps[0] != "" {
		mime = comps[0]
	}
	for _, c := range comps[1:] {
		if strings.EqualFold(strings.TrimSpace(c), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		d, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else if d, err := url.PathUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	return &Resource{URL: "data:" + mime, Data: data, MimeType: mimeOf(mime, "", data)}, nil
}

// resolveURL resolves a source relative to the base URL
func (l *Loader) resolveURL(src string) (string, error) {
	if isRemote(src) || filepath.IsAbs(src) || l.BaseURL == "" {
		return src, nil
	}

	if !isRemote(l.BaseURL) {
		return filepath.Join(filepath.Dir(l.BaseURL), src), nil
	}

	baseURL, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	relURL, err := url.Parse(src)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

func (l *Loader) loadRemote(ctx context.Context, src string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Resource{
		URL:      src,
		Data:     data,
		MimeType: mimeOf(resp.Header.Get("Content-Type"), src, data),
	}, nil
}

func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l.loadFromSearchPaths(path)
	}
	if err != nil {
		return nil, err
	}
	return &Resource{URL: path, Data: data, MimeType: mimeOf("", path, data)}, nil
}

func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return &Resource{URL: path, Data: data, MimeType: mimeOf("", path, data)}, nil
	}
	return nil, fmt.Errorf("resource not found: %s", filename)
}

// mimeOf prefers a declared image type, then the file extension, then the
// content itself.
func mimeOf(declared, path string, data []byte) string {
	declared = strings.TrimSpace(strings.SplitN(declared, ";", 2)[0])
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	if m := mimeFromExt(path); m != "" {
		return m
	}
	if looksLikeSVG(data) {
		return "image/svg+xml"
	}
	if sniffed := http.DetectContentType(data); sniffed != "application/octet-stream" {
		return strings.SplitN(sniffed, ";", 2)[0]
	}
	// TIFF has no entry in the sniffing table.
	if len(data) >= 4 && (string(data[:4]) == "II*\x00" || string(data[:4]) == "MM\x00*") {
		return "image/tiff"
	}
	if declared != "" {
		return declared
	}
	return "application/octet-stream"
}

func mimeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	}
	return ""
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(strings.ToLower(string(head)), "<svg")
}
