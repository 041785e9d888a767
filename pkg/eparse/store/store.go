// Package store moves serialized tables between eparse and its endpoints:
// a null sink, stdout, sqlite and postgres databases, and HTML documents
// staged in sqlite.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/output"
)

var (
	// ErrUnknownEndpoint indicates a URI whose scheme no endpoint handles.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrInvalidURI indicates a malformed endpoint address.
	ErrInvalidURI = errors.New("invalid endpoint uri")
	// ErrNotSerialized indicates output data that is not a list of records.
	ErrNotSerialized = errors.New("bad data - did you serialize it first?")
)

// Interface is an input or output endpoint.
type Interface interface {
	// Input runs a query method and returns its rows.
	Input(ctx context.Context, method string, filters Filters) ([]map[string]interface{}, error)
	// Output writes data to the endpoint.
	Output(ctx context.Context, data interface{}) error
	// Migrate applies a named schema migration.
	Migrate(ctx context.Context, name string) error
}

type config struct {
	writer io.Writer
	html   *string
	logger *slog.Logger
}

// Option configures an endpoint created by New.
type Option func(*config)

// WithWriter sets the destination of the stdout endpoint.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writer = w }
}

// WithHTML sets the document an html endpoint loads on creation.
func WithHTML(markup string) Option {
	return func(c *config) { c.html = &markup }
}

// WithLogger sets the logger endpoints report to.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New returns the endpoint addressed by uri. The scheme prefix selects it:
// null, stdout, sqlite3, postgres or html.
func New(ctx context.Context, uri string, opts ...Option) (Interface, error) {
	cfg := config{writer: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		d   *Database
		err error
	)
	switch {
	case strings.HasPrefix(uri, "null"):
		return Null{}, nil
	case strings.HasPrefix(uri, "stdout"):
		return &Stdout{w: cfg.writer}, nil
	case strings.HasPrefix(uri, "sqlite3"):
		d, err = newSqlite(uri, cfg)
	case strings.HasPrefix(uri, "postgres"):
		d, err = newPostgres(uri, cfg)
	case strings.HasPrefix(uri, "html"):
		d, err = newHTML(ctx, strings.Replace(uri, "html", "sqlite3", 1), cfg)
	default:
		return nil, fmt.Errorf("%w: %s is not a recognized endpoint", ErrUnknownEndpoint, uri)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Null discards output and has no input.
type Null struct{}

func (Null) Input(context.Context, string, Filters) ([]map[string]interface{}, error) {
	return nil, nil
}

func (Null) Output(context.Context, interface{}) error { return nil }

func (Null) Migrate(context.Context, string) error { return nil }

// Stdout prints output as indented JSON and has no input.
type Stdout struct {
	w io.Writer
}

func (s *Stdout) Input(context.Context, string, Filters) ([]map[string]interface{}, error) {
	return nil, nil
}

func (s *Stdout) Output(_ context.Context, data interface{}) error {
	b, err := output.ToJSON(data, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.w, string(b))
	return err
}

func (s *Stdout) Migrate(context.Context, string) error { return nil }
