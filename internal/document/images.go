package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

// imageLine matches a line that is exactly one markdown image reference.
var imageLine = regexp.MustCompile(`^!\[\]\(([^)]+)\)$`)

// ImageRefFromLine returns the image reference if the line is a standalone
// ![](ref) reference, or "" otherwise.
func ImageRefFromLine(line string) string {
	m := imageLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ImageResolver fetches image bytes for references found in question text.
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) ([]byte, error)
}

// Resolver loads images from http(s) URLs or the local filesystem.
type Resolver struct {
	client *http.Client
}

// NewResolver creates a resolver with a bounded HTTP timeout for remote
// references.
func NewResolver() *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// maxImageSize caps a single embedded image at 20 MB.
const maxImageSize = 20 << 20

// Resolve fetches the bytes behind an image reference. http(s) references go
// over the network; anything else is treated as a local file path.
func (r *Resolver) Resolve(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return r.fetch(ctx, ref)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image %s exceeds %d bytes", ref, maxImageSize)
	}
	return data, nil
}

func (r *Resolver) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building image request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image body: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image %s exceeds %d bytes", url, maxImageSize)
	}
	return data, nil
}
