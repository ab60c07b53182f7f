package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_SkipsBuildAndHiddenDirs(t *testing.T) {
	root := t.TempDir()

	write := func(rel string) {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}

	write("src/Main.kt")
	write("src/Util.java")
	write("build/Generated.java")
	write(".gradle/cache.kt")
	write(".hidden/Ignored.kt")
	write("node_modules/pkg/Ignored.java")
	write("README.md")

	files, err := Find(root)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		rels = append(rels, rel)
	}

	assert.ElementsMatch(t, []string{"src/Main.kt", "src/Util.java"}, rels)
}
