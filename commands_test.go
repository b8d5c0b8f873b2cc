package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-base32/go-base32/lib/config"
)

func withFormat(t *testing.T, format string) {
	t.Helper()
	previous := config.ToolConfigProperties.Format
	config.ToolConfigProperties.Format = format
	t.Cleanup(func() {
		config.ToolConfigProperties.Format = previous
	})
}

func TestReadPayloadHex(t *testing.T) {
	assert := assert.New(t)
	withFormat(t, config.FormatHex)

	data, err := readPayload([]string{"f83e"})
	assert.Nil(err)
	assert.Equal([]byte{0xF8, 0x3E}, data)

	_, err = readPayload([]string{"not hex"})
	assert.NotNil(err)
}

func TestReadPayloadText(t *testing.T) {
	assert := assert.New(t)
	withFormat(t, config.FormatText)

	data, err := readPayload([]string{"zebras"})
	assert.Nil(err)
	assert.Equal([]byte("zebras"), data)
}

func TestReadPayloadUnknownFormat(t *testing.T) {
	assert := assert.New(t)
	withFormat(t, "base91")

	_, err := readPayload([]string{"00"})
	assert.NotNil(err)
}

func TestWritePayload(t *testing.T) {
	assert := assert.New(t)

	withFormat(t, config.FormatHex)
	var buf bytes.Buffer
	assert.Nil(writePayload(&buf, []byte{0xF8, 0x3E}))
	assert.Equal("f83e\n", buf.String())

	withFormat(t, config.FormatRaw)
	buf.Reset()
	assert.Nil(writePayload(&buf, []byte{0x00, 0xFF}))
	assert.Equal([]byte{0x00, 0xFF}, buf.Bytes())
}
