package gradle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectsOutput(t *testing.T) {
	output := "" +
		"Root project 'demo'\n" +
		"+--- Project ':app'\n" +
		"\\--- Project ':core'\n" +
		"     \\--- Project ':core:util'\n"

	modules, err := parseProjectsOutput(output)
	require.NoError(t, err)
	assert.Equal(t, []string{":app", ":core", ":core:util"}, modules)
}

func TestParseProjectsOutput_RootOnly(t *testing.T) {
	modules, err := parseProjectsOutput("Root project 'demo'\n")
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestParseDependenciesOutput_FlatTree(t *testing.T) {
	output := "" +
		"compileClasspath - Compile classpath for source set 'main'.\n" +
		"+--- com.example:foo:1.0\n" +
		"\\--- com.example:baz:3.0\n"

	nodes, err := parseDependenciesOutput(output)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "com.example:foo:1.0", nodes[0].Coordinate)
	assert.Equal(t, "com.example:baz:3.0", nodes[1].Coordinate)
}

func TestParseDependenciesOutput_NestedTree(t *testing.T) {
	output := "" +
		"compileClasspath - Compile classpath for source set 'main'.\n" +
		"+--- com.example:foo:1.0\n" +
		"|    \\--- com.example:bar:2.0\n" +
		"\\--- com.example:baz:3.0\n"

	nodes, err := parseDependenciesOutput(output)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "com.example:bar:2.0", nodes[0].Children[0].Coordinate)
	assert.Empty(t, nodes[1].Children)
}

func TestParseDependenciesOutput_VersionOverrideAndOmitted(t *testing.T) {
	output := "" +
		"compileClasspath - Compile classpath for source set 'main'.\n" +
		"+--- com.example:foo:1.0 -> 1.2\n" +
		"\\--- com.example:bar:2.0 (*)\n"

	nodes, err := parseDependenciesOutput(output)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "com.example:foo:1.2", nodes[0].Coordinate)
	assert.Equal(t, "com.example:bar:2.0", nodes[1].Coordinate)
}

func TestDependencyIndentLevel(t *testing.T) {
	depth, rest, ok := dependencyIndentLevel("|    |    \\--- com.example:leaf:1.0")
	require.True(t, ok)
	assert.Equal(t, 2, depth)
	assert.Equal(t, "com.example:leaf:1.0", rest)

	_, _, ok = dependencyIndentLevel("compileClasspath - Compile classpath for source set 'main'.")
	assert.False(t, ok)
}
