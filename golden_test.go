package minihtml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/minihtml"
	"github.com/stretchr/testify/require"
)

// TestDumpGolden parses every .html file under testdata/ and compares
// the serialized tree with the .dump file of the same name.
//
// Environment variable MINIHTML_GOLDEN_FILES can be set to test only
// specific files:
//
//	MINIHTML_GOLDEN_FILES=page.html go test -run TestDumpGolden
func TestDumpGolden(t *testing.T) {
	only := map[string]struct{}{}
	if v := os.Getenv("MINIHTML_GOLDEN_FILES"); v != "" {
		for _, f := range strings.Split(v, ",") {
			only[strings.TrimSpace(f)] = struct{}{}
		}
	}

	const dir = "testdata"
	files, err := os.ReadDir(dir)
	require.NoError(t, err, "os.ReadDir should succeed")

	var tested int
	for _, fi := range files {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".html") {
			continue
		}
		if len(only) > 0 {
			if _, ok := only[fi.Name()]; !ok {
				continue
			}
		}

		fn := filepath.Join(dir, fi.Name())
		goldenfn := strings.TrimSuffix(fn, ".html") + ".dump"
		if _, err := os.Stat(goldenfn); err != nil {
			t.Logf("%s does not exist, skipping...", goldenfn)
			continue
		}

		t.Run(fi.Name(), func(t *testing.T) {
			golden, err := os.ReadFile(goldenfn)
			require.NoError(t, err, "os.ReadFile should succeed for golden file")

			input, err := os.ReadFile(fn)
			require.NoError(t, err, "os.ReadFile should succeed for input file")

			root, err := minihtml.Parse(string(input))
			require.NoError(t, err, "minihtml.Parse should succeed for %s", fn)

			actual, err := minihtml.Serialize(root)
			require.NoError(t, err, "minihtml.Serialize should succeed for %s", fn)

			if actual != string(golden) {
				// Save the actual output to .err file for debugging
				if err := os.WriteFile(fn+".dump.err", []byte(actual), 0o600); err == nil {
					t.Logf("Actual output saved to %s", fn+".dump.err")
				}
			}
			require.Equal(t, string(golden), actual, "output should match golden file for %s", fn)
		})
		tested++
	}
	if len(only) == 0 {
		require.NotZero(t, tested, "at least one golden file should be tested")
	}
}
