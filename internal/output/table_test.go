package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "LABEL").
		Row("react", "React + Vite").
		Row("sveltekit", "SvelteKit").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "LABEL")
	assert.Contains(t, out, "React + Vite")
	assert.Contains(t, out, "sveltekit")
}
