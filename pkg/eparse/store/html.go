package store

import (
	"context"
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
)

// newHTML returns a sqlite endpoint preloaded with the first table of the
// configured HTML document, if any.
func newHTML(ctx context.Context, uri string, cfg config) (*Database, error) {
	d, err := newSqlite(uri, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.html == nil {
		return d, nil
	}

	records, err := parser.HTMLToRecords(strings.NewReader(*cfg.html), models.Metadata{})
	if err != nil {
		return nil, err
	}
	if err := d.Output(ctx, records); err != nil {
		return nil, err
	}
	return d, nil
}
