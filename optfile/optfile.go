// Package optfile reads and writes option lists as YAML or JSON documents.
//
//	name: chicago-to-denver
//	options:
//	  - {price: "129.99", time: 4.5}
//	  - {price: 89, time: 7}
//
// Prices go through shopspring/decimal so textual amounts keep their exact
// cents until they are handed to the options package as float64.
package optfile

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/travelopts/options"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat indicates a format name or file extension optfile does not handle.
	ErrUnknownFormat = errors.New("optfile: unknown format")

	// ErrInvalidOption indicates an entry with a negative price, or a time
	// that is negative, NaN or infinite.
	ErrInvalidOption = errors.New("optfile: invalid option")
)

// Entry is one option as stored in a document.
type Entry struct {
	Price decimal.Decimal `yaml:"price" json:"price"`
	Time  float64         `yaml:"time" json:"time"`
}

// Document is a named option sequence.
type Document struct {
	Name    string  `yaml:"name,omitempty" json:"name,omitempty"`
	Options []Entry `yaml:"options" json:"options"`
}

// ParseFormat maps "yaml", "yml" or "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "optfile: read")
	}

	var doc Document
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "optfile: decode %s", f)
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, f Format, doc *Document) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
	if err != nil {
		return errors.Wrapf(err, "optfile: encode %s", f)
	}
	_, err = w.Write(data)

	return errors.Wrap(err, "optfile: write")
}

// Load reads the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "optfile: open")
	}
	defer file.Close()

	doc, err := Decode(file, f)

	return doc, errors.Wrap(err, path)
}

// Save writes doc to path, choosing the format by extension.
func Save(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, doc); err != nil {
		return err
	}

	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "optfile: write file")
}

// Validate rejects negative prices and times, and times that are NaN or
// infinite.
func (d *Document) Validate() error {
	for i, e := range d.Options {
		if e.Price.IsNegative() || e.Time < 0 || math.IsNaN(e.Time) || math.IsInf(e.Time, 0) {
			return errors.Wrapf(ErrInvalidOption, "entry %d: price %s time %g", i, e.Price, e.Time)
		}
	}

	return nil
}

// List converts the document into an options.List in document order.
func (d *Document) List() *options.List {
	seq := make([]options.Option, len(d.Options))
	for i, e := range d.Options {
		seq[i] = options.Option{Price: e.Price.InexactFloat64(), Time: e.Time}
	}

	return options.FromSequence(seq)
}

// FromList builds a document from l.
func FromList(name string, l *options.List) *Document {
	doc := &Document{Name: name, Options: make([]Entry, 0, l.Len())}
	l.Each(func(o options.Option) bool {
		doc.Options = append(doc.Options, Entry{Price: decimal.NewFromFloat(o.Price), Time: o.Time})
		return true
	})

	return doc
}
