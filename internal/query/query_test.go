package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjnav/kjnav/internal/symbols"
)

func buildFixtureIndex() *symbols.Index {
	idx := symbols.NewIndex()
	idx.AddFileInfo(symbols.FileInfo{Path: "LombokUser.java", Package: "com.example.core"})
	idx.AddFileInfo(symbols.FileInfo{Path: "Caller.java", Package: "com.example.core"})

	idx.AddOccurrence(symbols.Occurrence{
		Name: "LombokUser", FQN: "com.example.core.LombokUser",
		Kind: symbols.ClassDeclaration, File: "LombokUser.java", Line: 1,
	})
	idx.AddOccurrence(symbols.Occurrence{
		Name: "username", FQN: "com.example.core.LombokUser.username",
		Kind: symbols.PropertyDeclaration, File: "LombokUser.java", Line: 2,
	})
	idx.AddOccurrence(symbols.Occurrence{
		Name: "getUsername", FQN: "com.example.core.LombokUser.getUsername",
		Kind: symbols.FunctionDeclaration, File: "LombokUser.java", Line: 2,
	})
	idx.AddOccurrence(symbols.Occurrence{
		Name: "setUsername", FQN: "com.example.core.LombokUser.setUsername",
		Kind: symbols.FunctionDeclaration, File: "LombokUser.java", Line: 2,
	})
	idx.LombokAccessors["com.example.core.LombokUser.username"] = []string{
		"com.example.core.LombokUser.getUsername",
		"com.example.core.LombokUser.setUsername",
	}

	idx.AddOccurrence(symbols.Occurrence{
		Name: "getUsername", FQN: "com.example.core.LombokUser.getUsername",
		Kind: symbols.CallSite, File: "Caller.java", Line: 5,
	})
	idx.AddOccurrence(symbols.Occurrence{
		Name: "setUsername", FQN: "com.example.core.LombokUser.setUsername",
		Kind: symbols.CallSite, File: "Caller.java", Line: 6,
	})

	return idx
}

func TestFindDefinition_ByFQN(t *testing.T) {
	idx := buildFixtureIndex()
	decls := FindDefinition(idx, "com.example.core.LombokUser", "", 0)
	require.Len(t, decls, 1)
	assert.Equal(t, symbols.ClassDeclaration, decls[0].Kind)
}

func TestFindDefinition_NotFoundReturnsEmpty(t *testing.T) {
	idx := buildFixtureIndex()
	decls := FindDefinition(idx, "DoesNotExist", "", 0)
	assert.Empty(t, decls)
}

func TestFindUsages_LombokFieldIncludesAccessorCalls(t *testing.T) {
	idx := buildFixtureIndex()
	usages := FindUsages(idx, "com.example.core.LombokUser.username", "", 0, false)

	var sawGetter, sawSetter bool
	for _, o := range usages {
		if o.Name == "getUsername" && o.File == "Caller.java" {
			sawGetter = true
		}
		if o.Name == "setUsername" && o.File == "Caller.java" {
			sawSetter = true
		}
	}
	assert.True(t, sawGetter)
	assert.True(t, sawSetter)
}

func TestFindUsages_NotFoundReturnsEmpty(t *testing.T) {
	idx := buildFixtureIndex()
	usages := FindUsages(idx, "DoesNotExist", "", 0, false)
	assert.Empty(t, usages)
}
