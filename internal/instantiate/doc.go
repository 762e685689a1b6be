// Package instantiate materializes an example into a new project directory.
//
// The example tree is cloned recursively. Every file and directory name, and
// the contents of every UTF-8 text file not listed in the example's
// transform-exclude set, go through the token substitution pass, which
// rewrites the placeholder tokens (component-name, ComponentName, pack:name,
// PackName, ...) into renderings of the caller's component and package names.
// The adapter binary and shared WIT fragments the example depends on are
// copied next to the cloned tree.
//
// Output is written in place. A failure part way leaves the partial tree on
// disk.
package instantiate
