package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want bool
	}{
		{"exact", "We use Java daily", "java", true},
		{"prefix of longer word", "Senior JavaScript developer", "Java", false},
		{"plus plus", "Strong C++, Rust", "C++", true},
		{"sharp", "C# and .NET", "c#", true},
		{"leading dot", "C# and .NET", ".NET", true},
		{"dot inside word", "ASP.NET MVC", ".NET", false},
		{"dotted name", "Node.js experience", "node.js", true},
		{"end of text", "we ship Go", "go", true},
		{"slash", "CI/CD pipelines", "ci/cd", true},
		{"empty term", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.text, tt.term))
		})
	}
}

func TestIndexWordOrdersByPosition(t *testing.T) {
	text := "React, then TypeScript"
	assert.Less(t, IndexWord(text, "react"), IndexWord(text, "typescript"))
	assert.Equal(t, -1, IndexWord(text, "vue"))
}

func TestKeywords(t *testing.T) {
	kw := Keywords("Senior Go Engineer with Node.js and C++ experience.")

	assert.True(t, kw["senior"])
	assert.True(t, kw["engineer"])
	assert.True(t, kw["node.js"])
	assert.True(t, kw["c++"])
	assert.False(t, kw["go"], "tokens shorter than three runes are dropped")
	assert.False(t, kw["with"])
	assert.False(t, kw["experience"])
}

func TestCountKeywords(t *testing.T) {
	kw := Keywords("backend engineer payments")
	assert.Equal(t, 2, CountKeywords(kw, "Payments Backend Lead"))
	assert.Equal(t, 0, CountKeywords(kw, ""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "san francisco, ca", Normalize("  San   Francisco,  CA "))
	assert.Equal(t, "new york remote", Normalize("New-York / Remote!"))
	assert.Equal(t, "", Normalize("   "))
}
