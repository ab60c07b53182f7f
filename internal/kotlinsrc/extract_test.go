package kotlinsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjnav/kjnav/internal/symbols"
)

func TestExtractFile_InterfaceDeclaration(t *testing.T) {
	src := []byte("package com.example\n\ninterface Repository<T> { fun findById(id: String): T? }\n")

	result, err := ExtractFile("Repository.kt", src)
	require.NoError(t, err)
	assert.Equal(t, "com.example", result.FileInfo.Package)

	var found []symbols.Occurrence
	for _, o := range result.Occurrences {
		if o.Name == "Repository" && o.Kind == symbols.InterfaceDeclaration {
			found = append(found, o)
		}
	}
	require.Len(t, found, 1)
	assert.Equal(t, "com.example.Repository", found[0].FQN)
}

func TestExtractFile_ImportAlias(t *testing.T) {
	src := []byte("package com.example\n\nimport com.other.Bar as Baz\n\nval x = Baz()\n")

	result, err := ExtractFile("Caller.kt", src)
	require.NoError(t, err)
	require.Len(t, result.FileInfo.Imports, 1)
	assert.Equal(t, "com.other.Bar", result.FileInfo.Imports[0].Path)
	assert.Equal(t, "Baz", result.FileInfo.Imports[0].Alias)

	var callSite *symbols.Occurrence
	for i, o := range result.Occurrences {
		if o.Kind == symbols.CallSite && o.Name == "Baz" {
			callSite = &result.Occurrences[i]
		}
	}
	require.NotNil(t, callSite)
	assert.Equal(t, "com.other.Bar", callSite.FQN)
}

func TestExtractFile_TopLevelFunctionAndClassMethodShareName(t *testing.T) {
	src := []byte(`package com.example.core

fun generateReport(s: String) {}

class ReportServiceImpl {
    fun generateReport(s: String) {}
}
`)

	result, err := ExtractFile("Report.kt", src)
	require.NoError(t, err)

	var decls []symbols.Occurrence
	for _, o := range result.Occurrences {
		if o.Name == "generateReport" && o.Kind == symbols.FunctionDeclaration {
			decls = append(decls, o)
		}
	}
	require.Len(t, decls, 2)
}

func TestExtractFile_EmptyFile(t *testing.T) {
	result, err := ExtractFile("Empty.kt", []byte(""))
	require.NoError(t, err)
	assert.Empty(t, result.FileInfo.Package)
	assert.Empty(t, result.Occurrences)
}
