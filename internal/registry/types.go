package registry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/golemcloud/golem-examples/internal/model"
)

// MetadataPolicy decides what Build does with an example whose descriptor
// cannot be read, decoded or validated.
type MetadataPolicy string

const (
	// PolicyAbort fails the whole build.
	PolicyAbort MetadataPolicy = "abort"
	// PolicyWarn logs a warning and leaves the example out of the index.
	PolicyWarn MetadataPolicy = "warn"
)

// ParseMetadataPolicy accepts "abort" or "warn". The empty string selects
// PolicyAbort.
func ParseMetadataPolicy(s string) (MetadataPolicy, error) {
	switch MetadataPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicyWarn:
		return PolicyWarn, nil
	default:
		return "", fmt.Errorf("unknown metadata policy %q (want %q or %q)", s, PolicyAbort, PolicyWarn)
	}
}

// Options configures Build. The zero value aborts on bad metadata, validates
// descriptors against the schema and logs nothing.
type Options struct {
	MetadataPolicy MetadataPolicy
	// SkipValidation disables JSON Schema validation of descriptors.
	SkipValidation bool
	Logger         *log.Logger
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	// Language is nil to match every language.
	Language *model.GuestLanguage
	// MaxTier keeps examples whose language tier level is at most MaxTier.
	MaxTier model.Tier
}

// ForLanguage returns a filter matching a single language.
func ForLanguage(lang model.GuestLanguage) Filter {
	return Filter{Language: &lang}
}

func (f Filter) matches(ex model.Example) bool {
	if f.Language != nil && ex.Language != *f.Language {
		return false
	}
	if f.MaxTier != 0 && ex.Language.Tier().Level() > f.MaxTier.Level() {
		return false
	}
	return true
}
