package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	var buf bytes.Buffer

	Success(&buf, "%s added", "Lamp")
	Error(&buf, "bad %d", 3)
	Warning(&buf, "careful")
	Title(&buf, "Heading")

	out := buf.String()
	assert.Contains(t, out, SuccessMark+" Lamp added")
	assert.Contains(t, out, ErrorMark+" bad 3")
	assert.Contains(t, out, WarningMark+" careful")
	assert.Contains(t, out, "Heading")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}
