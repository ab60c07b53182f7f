package indexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjnav/kjnav/internal/symbols"
)

func TestValidateLombokAccessors_SameClassPasses(t *testing.T) {
	idx := symbols.NewIndex()
	idx.LombokAccessors["com.example.Person.name"] = []string{
		"com.example.Person.getName",
		"com.example.Person.setName",
	}

	err := ValidateLombokAccessors(idx)
	require.NoError(t, err)
}

func TestValidateLombokAccessors_CrossClassViolationReturnsErrIndex(t *testing.T) {
	idx := symbols.NewIndex()
	idx.LombokAccessors["com.example.Person.name"] = []string{
		"com.example.Other.getName",
	}

	err := ValidateLombokAccessors(idx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndex))
}

func TestValidateLombokAccessors_EmptyIndexPasses(t *testing.T) {
	idx := symbols.NewIndex()

	err := ValidateLombokAccessors(idx)
	require.NoError(t, err)
}

func TestContainingClass(t *testing.T) {
	assert.Equal(t, "com.example.Person", containingClass("com.example.Person.name"))
	assert.Equal(t, "Person", containingClass("Person.name"))
	assert.Equal(t, "name", containingClass("name"))
}
