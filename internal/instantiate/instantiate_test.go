package instantiate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/golemcloud/golem-examples/internal/catalog"
	"github.com/golemcloud/golem-examples/internal/model"
)

var binaryBlob = []byte{0x00, 0x61, 0x73, 0x6d, 0xff, 0xfe, 'c', 'o', 'm', 'p', 'o', 'n', 'e', 'n', 't', '-', 'n', 'a', 'm', 'e'}

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func testCatalog() *catalog.Catalog {
	return catalog.New(
		fstest.MapFS{
			"go/go-test/metadata.json":             file(`{"description":"test","exclude":["target"]}`),
			"go/go-test/component-name.txt":        file("Hello component_name"),
			"go/go-test/go.mod._":                  file("module pack-ns/component-name\n"),
			"go/go-test/Cargo.toml._":              file("[package]\nname = \"component_name\"\n"),
			"go/go-test/LICENSE":                   file("Copyright component_name"),
			"go/go-test/logo.bin":                  {Data: binaryBlob},
			"go/go-test/src/ComponentName.go":      file("package pack_name // PackName"),
			"go/go-test/src/metadata.json":         file(`{"kept":"component-name"}`),
			"go/go-test/src/target/ignored.txt":    file("x"),
			"go/go-test/target/debug/ignored.wasm": file("x"),
		},
		fstest.MapFS{
			"tier2/wasi_snapshot_preview1.wasm": {Data: []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}},
		},
		fstest.MapFS{
			"golem/golem-host.wit":  file("package golem:api;"),
			"golem/nested/skip.wit": file("package nested;"),
			"io/streams.wit":        file("package wasi:io;"),
			"io/poll.wit":           file("package wasi:io;"),
		},
	)
}

func testExample() model.Example {
	return model.Example{
		Name:             "go-test",
		Language:         model.Go,
		ExamplePath:      "go/go-test",
		Instructions:     "cd component-name && make build",
		Adapter:          "tier2/wasi_snapshot_preview1.wasm",
		WITDeps:          []string{"golem", "io"},
		Exclude:          map[string]bool{"target": true},
		TransformExclude: map[string]bool{"LICENSE": true},
	}
}

func testParams(target string) model.ExampleParameters {
	return model.ExampleParameters{
		ComponentName: "my-app",
		PackageName:   model.MustParsePackageName("acme:shop"),
		TargetPath:    target,
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestInstantiate(t *testing.T) {
	target := t.TempDir()

	instructions, err := Instantiate(testCatalog(), testExample(), testParams(target))
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if instructions != "cd my-app && make build" {
		t.Errorf("instructions = %q, want %q", instructions, "cd my-app && make build")
	}

	root := filepath.Join(target, "my-app")

	tests := []struct {
		path string
		want string
	}{
		{"my-app.txt", "Hello my_app"},
		{"go.mod", "module acme/my-app\n"},
		{"Cargo.toml", "[package]\nname = \"my_app\"\n"},
		{"LICENSE", "Copyright component_name"},
		{"src/MyApp.go", "package acme_shop // AcmeShop"},
		{"src/metadata.json", `{"kept":"my-app"}`},
		{"wit/deps/golem/golem-host.wit", "package golem:api;"},
		{"wit/deps/io/streams.wit", "package wasi:io;"},
		{"wit/deps/io/poll.wit", "package wasi:io;"},
	}
	for _, tt := range tests {
		if got := readOutput(t, filepath.Join(root, filepath.FromSlash(tt.path))); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}

	if got := readOutput(t, filepath.Join(root, "logo.bin")); got != string(binaryBlob) {
		t.Errorf("binary file was modified: %q", got)
	}

	adapter := filepath.Join(root, "adapters", "tier2", "wasi_snapshot_preview1.wasm")
	if !exists(adapter) {
		t.Errorf("adapter not copied to %s", adapter)
	}

	absent := []string{
		"metadata.json",
		"target",
		"src/target",
		"component-name.txt",
		"go.mod._",
		"wit/deps/golem/nested",
	}
	for _, p := range absent {
		if exists(filepath.Join(root, filepath.FromSlash(p))) {
			t.Errorf("%s should not exist in the output", p)
		}
	}
}

func TestInstantiateWITDepsTargets(t *testing.T) {
	target := t.TempDir()
	ex := testExample()
	ex.WITDepsTargets = []string{"components-go/component-name/wit/deps", "wit/deps"}

	if _, err := Instantiate(testCatalog(), ex, testParams(target)); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	root := filepath.Join(target, "my-app")
	for _, dir := range []string{"components-go/my-app/wit/deps", "wit/deps"} {
		for _, dep := range []string{"golem/golem-host.wit", "io/streams.wit"} {
			p := filepath.Join(root, filepath.FromSlash(dir), filepath.FromSlash(dep))
			if !exists(p) {
				t.Errorf("missing %s", p)
			}
		}
	}
}

func TestInstantiateWithoutAdapter(t *testing.T) {
	target := t.TempDir()
	ex := testExample()
	ex.Adapter = ""
	ex.WITDeps = nil

	if _, err := Instantiate(testCatalog(), ex, testParams(target)); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	root := filepath.Join(target, "my-app")
	if exists(filepath.Join(root, "adapters")) {
		t.Error("adapters directory should not be created")
	}
	if exists(filepath.Join(root, "wit", "deps")) {
		t.Error("wit/deps should not be created")
	}
}

func TestInstantiateCreatesTargetParents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")
	if _, err := Instantiate(testCatalog(), testExample(), testParams(target)); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if !exists(filepath.Join(target, "my-app", "my-app.txt")) {
		t.Error("output not written under a missing target directory")
	}
}

func TestInstantiateUsesComponentNameAsGiven(t *testing.T) {
	target := t.TempDir()
	p := testParams(target)
	p.ComponentName = "MyApp"

	if _, err := Instantiate(testCatalog(), testExample(), p); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if !exists(filepath.Join(target, "MyApp", "my-app.txt")) {
		t.Error("root directory should use the component name verbatim")
	}
}

func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			files[filepath.ToSlash(rel)+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

func TestInstantiateDeterministic(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	if _, err := Instantiate(testCatalog(), testExample(), testParams(first)); err != nil {
		t.Fatalf("first Instantiate: %v", err)
	}
	if _, err := Instantiate(testCatalog(), testExample(), testParams(second)); err != nil {
		t.Fatalf("second Instantiate: %v", err)
	}

	if diff := cmp.Diff(snapshot(t, first), snapshot(t, second)); diff != "" {
		t.Errorf("outputs differ (-first +second):\n%s", diff)
	}
}

func TestInstantiateMissingEntry(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.Example)
	}{
		{"example path", func(ex *model.Example) { ex.ExamplePath = "go/go-missing" }},
		{"adapter", func(ex *model.Example) { ex.Adapter = "tier9/wasi_snapshot_preview1.wasm" }},
		{"wit dep", func(ex *model.Example) { ex.WITDeps = []string{"sockets"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := testExample()
			tt.modify(&ex)

			_, err := Instantiate(testCatalog(), ex, testParams(t.TempDir()))
			if !errors.Is(err, catalog.ErrNotFound) {
				t.Fatalf("error = %v, want catalog.ErrNotFound", err)
			}
			var ioErr *IOError
			if errors.As(err, &ioErr) {
				t.Errorf("missing entry reported as IOError: %v", err)
			}
		})
	}
}

func TestInstantiateIOError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Instantiate(testCatalog(), testExample(), testParams(blocker))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Example != "go-test" {
		t.Errorf("Example = %q, want %q", ioErr.Example, "go-test")
	}
	if want := filepath.Join(blocker, "my-app"); ioErr.Path != want {
		t.Errorf("Path = %q, want %q", ioErr.Path, want)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		t.Error("IOError should not match catalog.ErrNotFound")
	}
}

func TestInstantiateEmbeddedExample(t *testing.T) {
	cat := catalog.Embedded()
	ex := model.Example{
		Name:        "go-default",
		Language:    model.Go,
		ExamplePath: "go/go-default",
		Adapter:     "tier2/wasi_snapshot_preview1.wasm",
		WITDeps:     []string{"golem", "wasm-rpc", "blobstore", "cli", "clocks", "filesystem", "http", "io", "keyvalue", "logging", "random", "sockets"},
		Exclude:     map[string]bool{"binding": true, "component_name.wasm": true},
	}
	target := t.TempDir()

	if _, err := Instantiate(cat, ex, testParams(target)); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	root := filepath.Join(target, "my-app")
	if !exists(filepath.Join(root, "go.mod")) {
		t.Error("go.mod._ should be written as go.mod")
	}
	entries, err := os.ReadDir(filepath.Join(root, "wit", "deps"))
	if err != nil {
		t.Fatalf("reading wit/deps: %v", err)
	}
	if len(entries) != len(ex.WITDeps) {
		t.Errorf("wit/deps holds %d fragments, want %d", len(entries), len(ex.WITDeps))
	}
}
