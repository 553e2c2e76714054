package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmtemplate-generator/internal/diagnostic"
)

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestSyntax_Valid(t *testing.T) {
	template := `## header
#set($name = $request.name)

<Person>
  #if($name)
    <Name>$!{name}</Name>
  #end
  <Empty></Empty>
  <Self attr="1"/>
</Person>`

	ok, diags := Syntax(template)

	assert.True(t, ok)
	assert.Empty(t, diags)
}

func TestSyntax_UnbalancedDirectives(t *testing.T) {
	template := "#if($a)\n#if($b)\n#if($c)\n#end\n#end\n"

	ok, diags := Syntax(template)

	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnbalancedDirective, diags[0].Code)
	assert.Equal(t, "Unmatched #if/#end directives: 3 #if vs 2 #end", diags[0].Message)
}

func TestSyntax_MalformedReferences(t *testing.T) {
	tests := []struct {
		name     string
		template string
		lines    []int
	}{
		{"unterminated", "<A>${name</A>", []int{1}},
		{"nested dollar", "<A>${na$me}</A>", []int{1}},
		{"nested brace", "\n<A>$!{na{me}</A>", []int{2}},
		{"two on one line", "<A>${a</A>\n<B>${b$}</B> <C>${c{}</C>", []int{1, 2, 2}},
		{"plain and quiet ok", "<A>${a}$!{b}$c</A>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Syntax(tt.template)

			var lines []int

			for _, d := range diags {
				if d.Code == CodeMalformedReference {
					lines = append(lines, d.Line)
				}
			}

			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestSyntax_TagBalance(t *testing.T) {
	template := "<Root>\n  <B>x</B>\n  <A>\n  <C></C></C>\n"

	ok, diags := Syntax(template)

	assert.False(t, ok)
	assert.Equal(t, []string{CodeUnbalancedTag, CodeUnbalancedTag, CodeUnbalancedTag}, codes(diags))
	assert.Contains(t, diags[0].Message, "<A>: 1 opening vs 0 closing")
	assert.Contains(t, diags[1].Message, "<C>: 1 opening vs 2 closing")
	assert.Contains(t, diags[2].Message, "<Root>: 1 opening vs 0 closing")
}

func TestSyntax_IgnoresDeclarationsAndComments(t *testing.T) {
	template := "<?xml version=\"1.0\"?>\n<!-- note -->\n## <Unclosed>\n<A>$!{v}</A>"

	ok, diags := Syntax(template)

	assert.True(t, ok, diags)
}

func TestSyntax_SetWithoutAssignment(t *testing.T) {
	template := "#set($a = $request.a)\n#set($b)\n"

	ok, diags := Syntax(template)

	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, CodeInvalidSet, diags[0].Code)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "#set($b)")
}
