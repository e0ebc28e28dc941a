package tail_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/tail"
	"github.com/stretchr/testify/assert"
)

func setupTestFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "tail")
	if nil != err {
		t.Fatalf("create temp dir with error: %s", err)
	}

	path := filepath.Join(dir, "stream.log")
	if err := ioutil.WriteFile(path, []byte(content), 0644); nil != err {
		t.Fatalf("write file with error: %s", err)
	}

	return path, func() {
		os.RemoveAll(dir)
	}
}

func appendTo(t *testing.T, path string, content string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		t.Fatalf("open file with error: %s", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); nil != err {
		t.Fatalf("append file with error: %s", err)
	}
}

func TestOpenWhenMissing(t *testing.T) {
	_, err := tail.Open(filepath.Join(os.TempDir(), "not-exist", "stream.log"))
	assert.True(t, errors.Is(err, fault.ErrSourceUnavailable), "wrong error")
}

func TestReadLineSkipsExistingRecords(t *testing.T) {
	path, teardown := setupTestFile(t, "old - record\n")
	defer teardown()

	src, err := tail.Open(path)
	assert.Nil(t, err, "wrong error")
	defer src.Close()

	_, ok, err := src.ReadLine()
	assert.Nil(t, err, "wrong error")
	assert.False(t, ok, "read record existing before open")

	appendTo(t, path, "new - record\n")

	line, ok, err := src.ReadLine()
	assert.Nil(t, err, "wrong error")
	assert.True(t, ok, "no record")
	assert.Equal(t, "new - record", line, "wrong record")
}

func TestReadLineWhenPartial(t *testing.T) {
	path, teardown := setupTestFile(t, "")
	defer teardown()

	src, _ := tail.Open(path)
	defer src.Close()

	appendTo(t, path, "2025 INFO - half")
	_, ok, _ := src.ReadLine()
	assert.False(t, ok, "partial record returned")

	appendTo(t, path, " record\r\nnext\n")

	line, ok, _ := src.ReadLine()
	assert.True(t, ok, "no record")
	assert.Equal(t, "2025 INFO - half record", line, "wrong record")

	line, ok, _ = src.ReadLine()
	assert.True(t, ok, "no record")
	assert.Equal(t, "next", line, "wrong record")

	_, ok, _ = src.ReadLine()
	assert.False(t, ok, "wrong extra record")
}

func TestReadLineKeepsOrder(t *testing.T) {
	path, teardown := setupTestFile(t, "")
	defer teardown()

	src, _ := tail.Open(path)
	defer src.Close()

	appendTo(t, path, "a\n\nb\nc\n")

	expected := []string{"a", "", "b", "c"}
	for _, e := range expected {
		line, ok, _ := src.ReadLine()
		assert.True(t, ok, "no record")
		assert.Equal(t, e, line, "wrong order")
	}
}
