package registry

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/golemcloud/golem-examples/internal/catalog"
	"github.com/golemcloud/golem-examples/internal/metadata"
	"github.com/golemcloud/golem-examples/internal/model"
)

// instructionsFile is the per-language instructions file and is never
// treated as an example directory.
const instructionsFile = "INSTRUCTIONS"

// adapterFile is the adapter binary name under each tier directory.
const adapterFile = "wasi_snapshot_preview1.wasm"

// Host interface fragments, copied when requiresGolemHostWIT is set.
var golemHostWIT = []string{"golem", "wasm-rpc"}

// Standard WASI fragments, copied when requiresWASI is set.
var wasiWIT = []string{
	"blobstore",
	"cli",
	"clocks",
	"filesystem",
	"http",
	"io",
	"keyvalue",
	"logging",
	"random",
	"sockets",
}

type builder struct {
	cat    *catalog.Catalog
	opts   Options
	logger *log.Logger
}

// Build walks every language bucket of the catalog and returns the index of
// all examples it holds. An unknown bucket name, a missing instructions file
// or a dangling adapter or WIT reference is fatal. Descriptor failures follow
// opts.MetadataPolicy.
func Build(cat *catalog.Catalog, opts Options) (*Index, error) {
	if opts.MetadataPolicy == "" {
		opts.MetadataPolicy = PolicyAbort
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &builder{cat: cat, opts: opts, logger: logger}

	buckets, err := cat.ReadDir(catalog.Examples, ".")
	if err != nil {
		return nil, fmt.Errorf("listing example buckets: %w", err)
	}

	idx := &Index{}
	for _, bucket := range buckets {
		if !bucket.IsDir() {
			continue
		}
		lang, err := model.ParseGuestLanguage(bucket.Name())
		if err != nil {
			return nil, fmt.Errorf("example bucket %q: %w", bucket.Name(), err)
		}
		examples, err := b.bucket(lang, bucket.Name())
		if err != nil {
			return nil, err
		}
		idx.examples = append(idx.examples, examples...)
	}

	b.logger.Debug("example index built", "examples", len(idx.examples), "catalog", cat.Source())
	return idx, nil
}

func (b *builder) bucket(lang model.GuestLanguage, dir string) ([]model.Example, error) {
	entries, err := b.cat.ReadDir(catalog.Examples, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s examples: %w", lang.Name(), err)
	}

	var result []model.Example
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || name == instructionsFile || strings.HasPrefix(name, ".") {
			continue
		}
		ex, ok, err := b.example(lang, dir, name)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, ex)
		}
	}
	return result, nil
}

// example parses one example directory. ok is false when the example was
// skipped under PolicyWarn.
func (b *builder) example(lang model.GuestLanguage, bucket, name string) (model.Example, bool, error) {
	examplePath := path.Join(bucket, name)

	meta, err := metadata.Load(b.cat.FS(catalog.Examples), examplePath, !b.opts.SkipValidation)
	if err != nil {
		if b.opts.MetadataPolicy == PolicyWarn {
			b.logger.Warn("skipping example with unusable metadata", "example", name, "err", err)
			return model.Example{}, false, nil
		}
		return model.Example{}, false, fmt.Errorf("example %s: %w", name, err)
	}

	instructionsPath := path.Join(bucket, instructionsFile)
	if meta.Instructions != "" {
		instructionsPath = path.Join(bucket, meta.Instructions)
	}
	instructions, err := b.cat.ReadFile(catalog.Examples, instructionsPath)
	if err != nil {
		return model.Example{}, false, fmt.Errorf("example %s: instructions: %w", name, err)
	}

	ex := model.Example{
		Name:             model.ExampleName(name),
		Language:         lang,
		Description:      meta.Description,
		ExamplePath:      examplePath,
		Instructions:     string(instructions),
		WITDeps:          witDeps(meta),
		WITDepsTargets:   meta.WITDepsPaths,
		Exclude:          toSet(meta.Exclude),
		TransformExclude: toSet(meta.TransformExclude),
	}
	if meta.NeedsAdapter() {
		ex.Adapter = path.Join(lang.Tier().Name(), adapterFile)
	}

	if err := b.verify(ex); err != nil {
		return model.Example{}, false, err
	}

	b.logger.Debug("indexed example", "example", name, "language", lang.ID(), "wit_deps", len(ex.WITDeps))
	return ex, true, nil
}

// verify checks that every referenced adapter and WIT fragment is present.
func (b *builder) verify(ex model.Example) error {
	if ex.Adapter != "" && !b.cat.HasFile(catalog.Adapters, ex.Adapter) {
		return fmt.Errorf("example %s: adapter: %w: %s/%s", ex.Name, catalog.ErrNotFound, catalog.Adapters, ex.Adapter)
	}
	var missing []string
	for _, dep := range ex.WITDeps {
		if !b.cat.HasDir(catalog.WIT, dep) {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("example %s: wit deps: %w: %s", ex.Name, catalog.ErrNotFound, strings.Join(missing, ", "))
	}
	return nil
}

func witDeps(meta *metadata.ExampleMetadata) []string {
	var deps []string
	if meta.NeedsGolemHostWIT() {
		deps = append(deps, golemHostWIT...)
	}
	if meta.NeedsWASI() {
		deps = append(deps, wasiWIT...)
	}
	return deps
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// IsNotFound reports whether err stems from a missing catalog entry.
func IsNotFound(err error) bool {
	return errors.Is(err, catalog.ErrNotFound)
}
