package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/salarydash/internal/client"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Fetch downloads a dataset over HTTP. HTML responses are read with
// ReadHTMLTable, anything else as CSV. When progress is non-nil a download
// bar is drawn on it.
func Fetch(ctx context.Context, hc *http.Client, url string, progress io.Writer) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client.SetHeaders(req)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: received non-200 status code: %d", resp.StatusCode)
	}

	body, err := client.BodyReader(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if progress != nil {
		// Unknown length (-1) draws as a plain byte counter
		total := max(resp.ContentLength, 0)
		bar := pb.New64(total).
			Set(pb.Bytes, true).
			SetWriter(progress).
			Start()
		defer bar.Finish()
		r = bar.NewProxyReader(body)
	}

	read := ReadCSV
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		read = ReadHTMLTable
	}
	records, err := read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return records, nil
}

// IsURL reports whether source names an HTTP(S) location rather than a file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open loads a dataset from a URL or a file path and wraps it in a Store.
func Open(ctx context.Context, hc *http.Client, source string, progress io.Writer) (*Store, error) {
	var (
		records []models.Record
		err     error
	)
	if IsURL(source) {
		records, err = Fetch(ctx, hc, source, progress)
	} else {
		records, err = LoadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return NewStore(records), nil
}
