package main

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestToEthiopian(t *testing.T) {
	out, err := execute(t, "to-ethiopian", "2015-09-11")
	require.NoError(t, err)
	assert.Equal(t, "2008-01-01\n", out)
}

func TestToEthiopian_InvalidDate(t *testing.T) {
	_, err := execute(t, "to-ethiopian", "2023-02-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid gregorian date")
}

func TestToGregorian(t *testing.T) {
	out, err := execute(t, "to-gregorian", "2008-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2015-09-11\n", out)
}

func TestToGregorian_NegativeYear(t *testing.T) {
	// "--" keeps cobra from reading the leading year sign as a flag.
	out, err := execute(t, "to-gregorian", "--", "-0007-05-09")
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01\n", out)
}

func TestToGregorian_InvalidPagume(t *testing.T) {
	_, err := execute(t, "to-gregorian", "2016-13-06")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ethiopian date")
}

func TestJDN(t *testing.T) {
	out, err := execute(t, "jdn", "2015-09-11")
	require.NoError(t, err)
	assert.Equal(t, "2457277\n", out)
}

func TestJDN_Ethiopian(t *testing.T) {
	out, err := execute(t, "jdn", "--ethiopian", "2008-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2457277\n", out)
}

func TestFromJDN(t *testing.T) {
	out, err := execute(t, "from-jdn", "2457277")
	require.NoError(t, err)
	assert.Equal(t, "gregorian: 2015-09-11\nethiopian: 2008-01-01\n", out)
}

func TestFromJDN_BelowRange(t *testing.T) {
	_, err := execute(t, "from-jdn", "1721425")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Julian Day Number")
}

func TestFromJDN_NotANumber(t *testing.T) {
	_, err := execute(t, "from-jdn", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Julian Day Number")
}

func TestToday(t *testing.T) {
	out, err := execute(t, "today")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\n$`), out)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		y, m, d int
		wantErr bool
	}{
		{input: "2015-09-11", y: 2015, m: 9, d: 11},
		{input: "2015-9-1", y: 2015, m: 9, d: 1},
		{input: "-0007-05-09", y: -7, m: 5, d: 9},
		{input: "2015-09", wantErr: true},
		{input: "2015-09-11-4", wantErr: true},
		{input: "2015--09-11", wantErr: true},
		{input: "sep-11-2015", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			y, m, d, err := parseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int{tt.y, tt.m, tt.d}, []int{y, m, d})
		})
	}
}

func TestFormatYMD(t *testing.T) {
	assert.Equal(t, "2008-01-01", formatYMD(2008, 1, 1))
	assert.Equal(t, "0001-01-01", formatYMD(1, 1, 1))
	assert.Equal(t, "-0007-05-09", formatYMD(-7, 5, 9))
}
