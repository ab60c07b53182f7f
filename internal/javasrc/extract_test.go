package javasrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjnav/kjnav/internal/symbols"
)

func TestExtractFile_Constructor(t *testing.T) {
	src := []byte("package com.example;\nclass Foo { Foo(int x) {} }\n")

	result, err := ExtractFile("Foo.java", src)
	require.NoError(t, err)

	var ctor, class *symbols.Occurrence
	for i, o := range result.Occurrences {
		switch {
		case o.Kind == symbols.ConstructorDeclaration:
			ctor = &result.Occurrences[i]
		case o.Kind == symbols.ClassDeclaration && o.Name == "Foo":
			class = &result.Occurrences[i]
		}
	}
	require.NotNil(t, ctor)
	require.NotNil(t, class)
	assert.Equal(t, "com.example.Foo.Foo", ctor.FQN)
	assert.Equal(t, "com.example.Foo", class.FQN)
}

func TestExtractFile_Interface(t *testing.T) {
	src := []byte("package com.example;\ninterface Repo { void save(); }\n")
	result, err := ExtractFile("Repo.java", src)
	require.NoError(t, err)

	var found bool
	for _, o := range result.Occurrences {
		if o.Name == "Repo" && o.Kind == symbols.InterfaceDeclaration {
			found = true
			assert.Equal(t, "com.example.Repo", o.FQN)
		}
	}
	assert.True(t, found)
}

func TestExtractFile_LombokData(t *testing.T) {
	src := []byte(`package com.example.core;

@Data
class LombokUser {
    String username;
    final String id;
    boolean active;
}
`)
	result, err := ExtractFile("LombokUser.java", src)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, o := range result.Occurrences {
		if o.Kind == symbols.FunctionDeclaration {
			names[o.Name] = true
		}
	}

	assert.True(t, names["getUsername"])
	assert.True(t, names["setUsername"])
	assert.True(t, names["isActive"])
	assert.True(t, names["getId"])
	assert.False(t, names["setId"], "final field must not get a setter")

	accessors := result.LombokAccessors["com.example.core.LombokUser.username"]
	assert.Contains(t, accessors, "com.example.core.LombokUser.getUsername")
	assert.Contains(t, accessors, "com.example.core.LombokUser.setUsername")
}

func TestExtractFile_WildcardStaticImport(t *testing.T) {
	src := []byte("package com.example;\nimport static com.example.Constants.*;\nclass C {}\n")
	result, err := ExtractFile("C.java", src)
	require.NoError(t, err)
	require.Len(t, result.FileInfo.Imports, 1)
	assert.Equal(t, "com.example.Constants", result.FileInfo.Imports[0].Path)
	assert.True(t, result.FileInfo.Imports[0].IsWildcard)
}
