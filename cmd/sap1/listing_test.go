package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sap1/cpu"
)

func TestWriteListing(t *testing.T) {
	assert := assert.New(t)

	prog, err := cpu.Assemble("LDA E\nADD F\nOUT\nHLT\nORG E\nDB 5\nDB 3")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	writeListing(buf, prog)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(1+cpu.MEMORY_SIZE+1+4+1+2, len(lines))
	assert.Equal("memory:", lines[0])
	assert.Equal("  0: 0E LDA E       1: LDA E", lines[1])
	assert.Equal("  4: 00 LDA 0     ", lines[5])
	assert.Equal("code:", lines[17])
	assert.Equal("  2: E0   3: OUT", lines[20])
	assert.Equal("data:", lines[22])
	assert.Equal("  F: 03   7: DB 3", lines[24])
}

func TestWriteListingDataFirst(t *testing.T) {
	assert := assert.New(t)

	prog, err := cpu.Assemble("ORG 0\nDB 9")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	writeListing(buf, prog)

	text := buf.String()
	assert.NotContains(text, "code:")
	assert.Contains(text, "data:\n  0: 09   2: DB 9\n")
}
