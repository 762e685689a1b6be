// Package toolchain runs the build steps of a generated component so the
// catalog's templates can be checked end to end.
package toolchain
