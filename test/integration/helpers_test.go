//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, so ~/.golem-examples/config.yaml is sandboxed
	CatalogDir string // an on-disk catalog checkout
	TargetDir  string // where components get generated
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		CatalogDir: t.TempDir(),
		TargetDir:  t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)

	return env
}

// setupCatalog writes a small directory-backed catalog with two Go examples,
// one TypeScript example and one example with a broken descriptor.
func setupCatalog(t *testing.T, root string) {
	t.Helper()

	examples := filepath.Join(root, "examples")
	writeFile(t, filepath.Join(examples, "go", "INSTRUCTIONS"), "cd component-name && make build\n")
	writeFile(t, filepath.Join(examples, "go", "go-default", "metadata.json"), `{
  "description": "Go default",
  "requiresGolemHostWIT": true,
  "exclude": ["binding"]
}`)
	writeFile(t, filepath.Join(examples, "go", "go-default", "go.mod._"), "module pack-ns/component-name\n")
	writeFile(t, filepath.Join(examples, "go", "go-default", "main.go"), "package main // component_name\n")
	writeFile(t, filepath.Join(examples, "go", "go-default", "binding", "gen.go"), "package binding\n")
	writeFile(t, filepath.Join(examples, "go", "go-broken", "metadata.json"), `{"description": `)

	writeFile(t, filepath.Join(examples, "ts", "INSTRUCTIONS"), "npm install\n")
	writeFile(t, filepath.Join(examples, "ts", "ts-default", "metadata.yaml"), "description: TS default\nrequiresAdapter: false\nexclude: [node_modules]\n")
	writeFile(t, filepath.Join(examples, "ts", "ts-default", "package.json"), `{"name": "component-name"}`)

	writeFile(t, filepath.Join(root, "adapters", "tier2", "wasi_snapshot_preview1.wasm"), "\x00asm\x01\x00\x00\x00")
	writeFile(t, filepath.Join(root, "wit", "deps", "golem", "golem-host.wit"), "package golem:api;\n")
	writeFile(t, filepath.Join(root, "wit", "deps", "wasm-rpc", "wasm-rpc.wit"), "package golem:rpc;\n")
}

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
