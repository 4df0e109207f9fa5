package publisher

import (
	"context"
	"fmt"
	"log"
	"os"

	"MarketBoard/internal/report"
)

// Uploader pushes a document to the storage destination.
type Uploader interface {
	// Upload stores body under key and returns the destination location.
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Result describes where one dashboard ended up.
type Result struct {
	Key      string
	Location string
	Fallback bool
	Bytes    int
}

// Publisher renders a chart set into an HTML document and delivers it: upload
// first, local file in the working directory when the upload fails.
type Publisher struct {
	Uploader Uploader
}

// NewPublisher creates a Publisher on top of the given uploader.
func NewPublisher(u Uploader) *Publisher {
	return &Publisher{Uploader: u}
}

// Publish delivers the group's dashboard. An upload failure triggers the
// local fallback; only a failure of the fallback write itself is returned as
// an error.
func (p *Publisher) Publish(ctx context.Context, charts report.ChartSet, groupName, periodLabel string) (*Result, error) {
	doc := RenderDocument(charts, groupName, periodLabel)
	key := ObjectKey(groupName, periodLabel)

	location, err := p.Uploader.Upload(ctx, key, doc, "text/html")
	if err == nil {
		log.Printf("[INFO] dashboard uploaded: %s", location)
		return &Result{Key: key, Location: location, Bytes: len(doc)}, nil
	}

	log.Printf("[ERROR] upload failed: %v", err)
	if werr := os.WriteFile(key, doc, 0o644); werr != nil {
		return nil, fmt.Errorf("write local fallback %s: %w", key, werr)
	}
	log.Printf("[INFO] saved locally as %s", key)
	return &Result{Key: key, Location: key, Fallback: true, Bytes: len(doc)}, nil
}
