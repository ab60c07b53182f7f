package gradle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWrapper writes an executable gradlew script that echoes a fixed
// response for "projects" and another for "*:dependencies" invocations.
func fakeWrapper(t *testing.T, projectsOutput, dependenciesOutput string) string {
	t.Helper()
	root := t.TempDir()
	script := "#!/bin/sh\n" +
		"case \"$1\" in\n" +
		"  projects) cat <<'EOF'\n" + projectsOutput + "EOF\n" +
		"  ;;\n" +
		"  *:dependencies) cat <<'EOF'\n" + dependenciesOutput + "EOF\n" +
		"  ;;\n" +
		"esac\n"
	path := filepath.Join(root, "gradlew")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return root
}

func TestRunner_HasWrapper(t *testing.T) {
	root := fakeWrapper(t, "Root project 'demo'\n", "")
	r := NewRunner(root)
	assert.True(t, r.HasWrapper())

	empty := NewRunner(t.TempDir())
	assert.False(t, empty.HasWrapper())
}

func TestRunner_Modules(t *testing.T) {
	root := fakeWrapper(t, "Root project 'demo'\n+--- Project ':app'\n", "")
	r := NewRunner(root)

	modules, err := r.Modules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{":app"}, modules)
}

func TestRunner_Dependencies(t *testing.T) {
	root := fakeWrapper(t,
		"Root project 'demo'\n+--- Project ':app'\n",
		"compileClasspath - Compile classpath for source set 'main'.\n+--- com.example:foo:1.0\n",
	)
	r := NewRunner(root)

	deps, err := r.Dependencies(context.Background(), ":app")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "com.example:foo:1.0", deps[0].Coordinate)
}

func TestRunner_MissingWrapperReturnsError(t *testing.T) {
	r := NewRunner(t.TempDir())
	_, err := r.Modules(context.Background())
	assert.ErrorIs(t, err, ErrWrapperNotFound)
}

func TestRunner_InvalidateCacheForcesReRun(t *testing.T) {
	root := fakeWrapper(t, "Root project 'demo'\n+--- Project ':app'\n", "")
	r := NewRunner(root)

	_, err := r.Modules(context.Background())
	require.NoError(t, err)

	r.InvalidateCache()
	modules, err := r.Modules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{":app"}, modules)
}
