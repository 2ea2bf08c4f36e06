package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// stubTerminal makes every descriptor look like a terminal (or not) and
// answers readPassword with pw/err.
func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) *int {
	t.Helper()
	gotFd := -1
	origRP, origIT := readPassword, isTerminal
	isTerminal = func(int) bool { return terminal }
	readPassword = func(fd int) ([]byte, error) {
		gotFd = fd
		return pw, err
	}
	t.Cleanup(func() {
		readPassword = origRP
		isTerminal = origIT
	})
	return &gotFd
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix newline", "hello world\n", "hello world"},
		{"crlf", "alice\r\n", "alice"},
		{"surrounding spaces", "  bob \n", "bob"},
		{"eof after text", "lastline", "lastline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tt.input), "Enter user name", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter user name\n> ", out.String())
		})
	}
}

func TestGetSimpleText_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Enter user name", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	gotFd := stubTerminal(t, true, []byte("pw"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("not used\n"), 7, "Choose a password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), pw)
	assert.Equal(t, 7, *gotFd)
	assert.Equal(t, "Choose a password\n> \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), 0, "Enter password", &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	gotFd := stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := GetPassword(rdr(" s3cret \nrest\n"), 0, "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte(" s3cret "), pw)
	assert.Equal(t, -1, *gotFd)
	assert.Equal(t, "Enter password\n> ", out.String())
}

func TestGetPassword_PipedInputExhausted(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), 0, "Enter password", &out)
	require.Error(t, err)
}
