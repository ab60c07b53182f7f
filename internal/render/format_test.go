package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/kjnav/kjnav/internal/symbols"
)

func TestFormatOccurrences_Empty(t *testing.T) {
	assert.Equal(t, "No results found.", FormatOccurrences("/project", nil))
}

func TestFormatOccurrences_Golden(t *testing.T) {
	occs := []symbols.Occurrence{
		{
			Name: "Repository", FQN: "com.example.Repository",
			Kind: symbols.InterfaceDeclaration, File: "/project/src/Repository.kt",
			Line: 3, Column: 1,
		},
		{
			Name: "findById", FQN: "com.example.Repository.findById",
			Kind: symbols.CallSite, File: "/project/src/Caller.kt",
			Line: 10, Column: 5, ReceiverType: "repo",
		},
	}

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(FormatOccurrences("/project", occs)))
}
