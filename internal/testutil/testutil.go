// Package testutil holds helpers shared by package tests
package testutil

import (
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/hourglass/internal/osutil"
)

// GoldenTest is a test case whose output is checked against a golden file.
type GoldenTest interface {
	Output() (out []byte, goldenFile string)
}

// CompareGoldenFile verifies that the output of an operation matches the
// contents of testdata/<name>.golden. Run the tests with -update to rewrite
// the golden files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	out, golden := tc.Output()

	g.Assert(t, golden, out)
}
