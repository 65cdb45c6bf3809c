package contact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// rawContact is the wire shape of one contact-plan entry. Unknown fields
// are ignored by both decoders; missing fields default to their Go zero
// value.
type rawContact struct {
	Source    int64 `json:"source" yaml:"source"`
	Dest      int64 `json:"dest" yaml:"dest"`
	StartTime int64 `json:"startTime" yaml:"startTime"`
	EndTime   int64 `json:"endTime" yaml:"endTime"`
	Rate      int64 `json:"rate" yaml:"rate"`
}

// rawPlan is the top-level contact-plan document shape: a single
// "contacts" key holding an array of rawContact. A document with no
// "contacts" key decodes to a nil slice, which Load treats as an empty,
// non-error plan.
type rawPlan struct {
	Contacts []rawContact `json:"contacts" yaml:"contacts"`
}

// LoadError wraps a decoding failure from Load with the offending path,
// so callers can errors.Is against ErrMalformedPlan while still recovering
// the path via the error string or Unwrap chain.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("contact: load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadOptions configures Load.
type LoadOptions struct {
	// MaxContacts truncates the decoded plan to at most this many
	// contacts, in document order. Zero (the default) means unlimited.
	MaxContacts int
}

// LoadOption is a functional option for Load, following the same
// functional-options shape cgr.Option and cmr.Option use.
type LoadOption func(*LoadOptions)

// WithMaxContacts bounds the number of contacts Load will decode. A
// non-positive n is a no-op (unlimited).
func WithMaxContacts(n int) LoadOption {
	return func(o *LoadOptions) {
		if n > 0 {
			o.MaxContacts = n
		}
	}
}

// DefaultLoadOptions returns LoadOptions with MaxContacts unlimited.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{MaxContacts: 0}
}

// Load reads a contact-plan document from path and returns the decoded
// ContactPlan. The encoding is chosen by file extension: ".yaml"/".yml"
// decodes with gopkg.in/yaml.v3; ".json" or no extension decodes with
// encoding/json. Any other extension is rejected with ErrUnknownEncoding.
//
// Every decoded entry becomes a Contact via New, which assigns the
// constructor defaults of confidence 1.0 and one-way light time 1, since
// the wire format carries neither.
func Load(path string, opts ...LoadOption) (*ContactPlan, error) {
	cfg := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var plan rawPlan
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedPlan, err)}
		}
	case ".json", "":
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedPlan, err)}
		}
	default:
		return nil, &LoadError{Path: path, Err: ErrUnknownEncoding}
	}

	contacts := make([]Contact, 0, len(plan.Contacts))
	for _, rc := range plan.Contacts {
		if cfg.MaxContacts > 0 && len(contacts) == cfg.MaxContacts {
			break
		}
		contacts = append(contacts, New(
			NodeId(rc.Source), NodeId(rc.Dest),
			rc.StartTime, rc.EndTime, rc.Rate,
		))
	}

	return NewPlan(contacts), nil
}
