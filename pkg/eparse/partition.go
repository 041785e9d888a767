package eparse

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"github.com/ukaji3/eparse-go/pkg/eparse/output"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
)

// PartitionMode selects the text of partitioned elements.
type PartitionMode string

const (
	// PartitionNone leaves element text empty; the table is only in the metadata HTML.
	PartitionNone PartitionMode = ""
	// PartitionEparse uses a text preview of the table head.
	PartitionEparse PartitionMode = "eparse"
	// PartitionDigest uses the table digest.
	PartitionDigest PartitionMode = "digest"
	// PartitionTableDigest uses the table head followed by its digest.
	PartitionTableDigest PartitionMode = "table-digest"
	// PartitionUnstructured uses the text content of the table HTML.
	PartitionUnstructured PartitionMode = "unstructured"
)

// PartitionOptions configures Partition.
type PartitionOptions struct {
	// Mode selects the element text.
	Mode PartitionMode
	// MaxRows limits preview rows. 0 means no limit.
	MaxRows int
	// MaxCols limits preview columns. 0 means no limit.
	MaxCols int
	// IncludeHeader renders the first table row as an HTML header.
	// If nil, defaults to true.
	IncludeHeader *bool
	// IncludeMetadata attaches provenance to each element.
	// If nil, defaults to true.
	IncludeMetadata *bool
	// Filename overrides the file name recorded in the metadata.
	Filename string
	// LastModified is recorded in the metadata.
	LastModified *time.Time
}

// DefaultPartitionOptions returns default partition options.
func DefaultPartitionOptions() PartitionOptions {
	return PartitionOptions{
		MaxRows: 75,
		MaxCols: 20,
	}
}

func (o PartitionOptions) includeHeader() bool {
	return o.IncludeHeader == nil || *o.IncludeHeader
}

func (o PartitionOptions) includeMetadata() bool {
	return o.IncludeMetadata == nil || *o.IncludeMetadata
}

// Partition turns tables into document elements, numbering them in order.
func Partition(tables []models.ParsedTable, opts PartitionOptions) ([]models.Element, error) {
	result := make([]models.Element, 0, len(tables))

	for i, pt := range tables {
		markup, err := output.TableToHTML(pt.Table, opts.includeHeader())
		if err != nil {
			return nil, err
		}

		text, err := elementText(pt, markup, opts)
		if err != nil {
			return nil, err
		}

		el := models.Element{Type: "Table", Text: text}
		if opts.includeMetadata() {
			filename := opts.Filename
			if filename == "" {
				filename = pt.File
			}
			el.Metadata = models.ElementMetadata{
				TextAsHTML:   markup,
				PageName:     pt.Sheet,
				PageNumber:   i + 1,
				Filename:     filename,
				LastModified: opts.LastModified,
				DataSource:   &models.DataSource{ExcelRC: pt.ExcelRC, TableName: pt.Name},
			}
		}
		result = append(result, el)
	}

	return result, nil
}

func elementText(pt models.ParsedTable, markup string, opts PartitionOptions) (string, error) {
	switch opts.Mode {
	case PartitionNone:
		return "", nil
	case PartitionEparse:
		return output.TableToText(pt.Table, opts.MaxRows, opts.MaxCols), nil
	case PartitionDigest, PartitionTableDigest:
		digest, err := parser.TableDigest(parser.SerializeTable(pt.Table, models.Metadata{}), pt.Name, "", "")
		if err != nil {
			return "", err
		}
		if opts.Mode == PartitionDigest {
			return digest, nil
		}
		return fmt.Sprintf("%s is a spreadsheet table. This is the head of the table:\n%s\nSummary: %s.",
			pt.Name, output.TableToText(pt.Table, opts.MaxRows, 0), digest), nil
	case PartitionUnstructured:
		return output.HTMLText(markup)
	}
	return "", fmt.Errorf("unknown partition mode %q", opts.Mode)
}

// PartitionFile extracts the tables of a file and partitions them. The
// file's modification time is recorded unless opts sets one.
func PartitionFile(path string, extract Options, opts PartitionOptions) ([]models.Element, error) {
	tables, err := Extract(path, extract)
	if err != nil {
		return nil, err
	}

	if opts.LastModified == nil {
		if st, err := os.Stat(path); err == nil {
			mod := st.ModTime()
			opts.LastModified = &mod
		}
	}
	if opts.Filename == "" {
		opts.Filename = filepath.Base(path)
	}

	return Partition(tables, opts)
}
