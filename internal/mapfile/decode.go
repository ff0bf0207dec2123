package mapfile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = validator.New()

// Options configures decoding.
type Options struct {
	// Validate runs field and structural validation after decoding.
	// Default: true
	Validate bool
}

// DefaultOptions returns decoding options with defaults
func DefaultOptions() Options {
	return Options{Validate: true}
}

// ReadFile decodes the map document stored at path.
func ReadFile(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Decode(f, opts)
}

// Decode reads a YAML map document from r.
func Decode(r io.Reader, opts Options) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode map: %w", err)
	}

	if opts.Validate {
		if err := Validate(&doc); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// Validate checks field constraints and cross references of a document:
// station and line indices in range, unique segment ids and well formed
// point and rectangle strings.
func Validate(doc *Document) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid map: %w", err)
	}

	stations := len(doc.Stations)
	lines := len(doc.Lines)

	for i, st := range doc.Stations {
		if lines > 0 && st.Line >= lines {
			return &ErrLineIndex{Entity: "station", Index: i, Ref: st.Line}
		}
		if st.Point != "" {
			if _, err := ParsePoint(st.Point); err != nil {
				return fmt.Errorf("station %d: %w", i, err)
			}
		}
		if st.Rect != "" {
			if _, err := ParseRect(st.Rect); err != nil {
				return fmt.Errorf("station %d: %w", i, err)
			}
		}
	}

	ids := make(map[int]struct{}, len(doc.Segments))
	for i, seg := range doc.Segments {
		if seg.From >= stations {
			return &ErrStationIndex{Entity: "segment", Index: i, Ref: seg.From, Count: stations}
		}
		if seg.To >= stations {
			return &ErrStationIndex{Entity: "segment", Index: i, Ref: seg.To, Count: stations}
		}
		if lines > 0 && seg.Line >= lines {
			return &ErrLineIndex{Entity: "segment", Index: i, Ref: seg.Line}
		}
		if _, dup := ids[seg.ID]; dup {
			return &ErrDuplicateSegment{ID: seg.ID}
		}
		ids[seg.ID] = struct{}{}
		if _, err := ParsePoints(seg.Nodes); err != nil {
			return fmt.Errorf("segment %d: %w", seg.ID, err)
		}
	}

	for i, t := range doc.Transfers {
		if t.From >= stations {
			return &ErrStationIndex{Entity: "transfer", Index: i, Ref: t.From, Count: stations}
		}
		if t.To >= stations {
			return &ErrStationIndex{Entity: "transfer", Index: i, Ref: t.To, Count: stations}
		}
	}

	return nil
}
