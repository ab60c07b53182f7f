package indexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjnav/kjnav/internal/symbols"
)

func sourceReader(files map[string]string) ContentReader {
	return func(path string) ([]byte, error) {
		return []byte(files[path]), nil
	}
}

func TestBuildAndCrossReference_CrossLanguageUsage(t *testing.T) {
	files := map[string]string{
		"User.kt": "package com.example.core\n\nclass User\n",
		"Main.java": `package com.example.app;
import com.example.core.User;
class Main {
    void run() {
        new User();
    }
}
`,
	}

	paths := []string{"User.kt", "Main.java"}
	idx, err := Build(context.Background(), paths, sourceReader(files), nil)
	require.NoError(t, err)
	CrossReference(idx)

	occs := idx.ByFQN["com.example.core.User"]
	require.NotEmpty(t, occs)

	var foundJavaCall bool
	for _, o := range occs {
		if o.File == "Main.java" && o.Kind == symbols.CallSite {
			foundJavaCall = true
		}
	}
	assert.True(t, foundJavaCall)
}

func TestCrossReference_TopLevelVsMethodShadow(t *testing.T) {
	files := map[string]string{
		"Report.kt": `package com.example.core

fun generateReport(s: String) {}

class ReportServiceImpl {
    fun generateReport(s: String) {
        generateReport("nested")
    }
}

fun caller() {
    generateReport("test")
}
`,
	}

	idx, err := Build(context.Background(), []string{"Report.kt"}, sourceReader(files), nil)
	require.NoError(t, err)
	CrossReference(idx)

	topLevelFQN := "com.example.core.generateReport"
	occs := idx.ByFQN[topLevelFQN]

	var sawOutsideCall bool
	for _, o := range occs {
		if o.Kind == symbols.CallSite && o.Name == "generateReport" {
			sawOutsideCall = true
		}
	}
	assert.True(t, sawOutsideCall, "call outside the class must resolve to the top-level FQN")
}

func TestRegisterCompanionAliases(t *testing.T) {
	idx := symbols.NewIndex()
	idx.AddOccurrence(symbols.Occurrence{
		Name: "create",
		FQN:  "com.example.MyClass.Companion.create",
		Kind: symbols.FunctionDeclaration,
		File: "MyClass.kt",
	})

	RegisterCompanionAliases(idx)

	aliased := idx.ByFQN["com.example.MyClass.create"]
	require.Len(t, aliased, 1)
	assert.Equal(t, "create", aliased[0].Name)
}

func TestFollowTypeAlias_CycleTerminates(t *testing.T) {
	idx := symbols.NewIndex()
	idx.AddTypeAlias("a", "b")
	idx.AddTypeAlias("b", "a")

	result := followTypeAlias(idx, "a")
	assert.Contains(t, []string{"a", "b"}, result)
}
