package symbols

import "testing"

import "github.com/stretchr/testify/assert"

func TestScopeChain(t *testing.T) {
	var tree ScopeTree
	tree.Add("Outer", ByteRange{Start: 0, End: 100})
	tree.Add("Inner", ByteRange{Start: 10, End: 50})
	tree.Finalize()

	chain := tree.ChainAt(20)
	assert.Len(t, chain, 2)
	assert.Equal(t, "Outer", chain[0].Name)
	assert.Equal(t, "Inner", chain[1].Name)

	chain = tree.ChainAt(70)
	assert.Len(t, chain, 1)
	assert.Equal(t, "Outer", chain[0].Name)
}

func TestFQNPrefixAt(t *testing.T) {
	var tree ScopeTree
	tree.Add("Outer", ByteRange{Start: 0, End: 100})
	tree.Add("Inner", ByteRange{Start: 10, End: 50})
	tree.Finalize()

	assert.Equal(t, "com.example.Outer.Inner", tree.FQNPrefixAt("com.example", 20))
	assert.Equal(t, "com.example.Outer", tree.FQNPrefixAt("com.example", 70))
	assert.Equal(t, "com.example", tree.FQNPrefixAt("com.example", 200))
}

func TestResolveReferenceOrder(t *testing.T) {
	imports := []Import{
		{Path: "com.other.Bar", Alias: "Baz"},
	}
	assert.Equal(t, "com.other.Bar", ResolveReference("Baz", "com.example", imports))
	assert.Equal(t, "com.example.Something", ResolveReference("Something", "com.example", imports))
	assert.Equal(t, "", ResolveReference("Something", "", nil))
}

func TestAddOccurrenceKeepsMapsInLockstep(t *testing.T) {
	idx := NewIndex()
	idx.AddOccurrence(Occurrence{Name: "Foo", FQN: "com.example.Foo", Kind: ClassDeclaration, File: "a.kt"})
	assert.Len(t, idx.ByName["Foo"], 1)
	assert.Len(t, idx.ByFQN["com.example.Foo"], 1)

	idx.AddOccurrence(Occurrence{Name: "local", File: "a.kt"})
	assert.Len(t, idx.ByName["local"], 1)
	assert.Empty(t, idx.ByFQN["local"])
}
