// Package groupfile reads named group requests from YAML or TOML documents.
//
// A document names the sequence length and lists groups, each with ranges
// written as half-open [start, end) pairs:
//
//	length: 10
//	groups:
//	  - name: header
//	    ranges: [[0, 3]]
//	  - name: body
//	    ranges: [[3, 6], [8, 10]]
package groupfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/disjoint"
)

var (
	ErrUnknownFormat  = errors.New("unknown group document format")
	ErrMalformedRange = errors.New("range must be a [start, end] pair")
	ErrDuplicateName  = errors.New("duplicate group name")
	ErrNegativeLength = errors.New("length must not be negative")
)

type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the document format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

type Document struct {
	Length int          `yaml:"length" toml:"length"`
	Groups []NamedGroup `yaml:"groups" toml:"groups"`
}

type NamedGroup struct {
	Name   string  `yaml:"name" toml:"name"`
	Ranges [][]int `yaml:"ranges" toml:"ranges"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data and checks the document's shape. It does not check the
// ranges for overlap or bounds; use Validate for that.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatTOML:
		err = toml.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) check() error {
	if d.Length < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, d.Length)
	}
	names := make(map[string]int, len(d.Groups))
	for i, g := range d.Groups {
		if g.Name != "" {
			if prev, ok := names[g.Name]; ok {
				return fmt.Errorf("%w: %q (groups %d and %d)", ErrDuplicateName, g.Name, prev, i)
			}
			names[g.Name] = i
		}
		for j, pair := range g.Ranges {
			if len(pair) != 2 {
				return fmt.Errorf("group %s range %d: %w, got %v", d.name(i), j, ErrMalformedRange, pair)
			}
		}
	}
	return nil
}

func (d *Document) name(i int) string {
	if n := d.Groups[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("#%d", i)
}

// Names lists the group names in order; unnamed groups are shown as #i.
func (d *Document) Names() []string {
	out := make([]string, len(d.Groups))
	for i := range d.Groups {
		out[i] = d.name(i)
	}
	return out
}

func (d *Document) Bounds() disjoint.Bounds {
	return disjoint.Bounds{Start: 0, End: d.Length}
}

// Request converts the document to a disjoint.Groups, keeping group and
// range order.
func (d *Document) Request() disjoint.Groups {
	out := make(disjoint.Groups, len(d.Groups))
	for i, g := range d.Groups {
		grp := make(disjoint.Group, 0, len(g.Ranges))
		for _, pair := range g.Ranges {
			grp = append(grp, disjoint.Range{Start: pair[0], End: pair[1]})
		}
		out[i] = grp
	}
	return out
}

// Validate checks the document's groups against its own length.
func (d *Document) Validate() error {
	return disjoint.Validate(d.Bounds(), d.Request())
}
