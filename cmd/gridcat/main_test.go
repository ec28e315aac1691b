// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/grid"
)

const letters = "abcd\nefgh\nijkl\n"

// execute runs the root command against stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestGridcat_Modes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"RowsDefault", nil, letters},
		{"Cols", []string{"--mode", "cols"}, "aei\nbfj\ncgk\ndhl\n"},
		{"ItemsRowMajor", []string{"--mode", "items"}, "abcdefghijkl\n"},
		{"ItemsColMajor", []string{"-m", "items", "--order", "col"}, "aeibfjcgkdhl\n"},
		{"ColsColMajor", []string{"-m", "cols", "--order", "col"}, "aei\nbfj\ncgk\ndhl\n"},
		{"CropRows", []string{"--crop", "1:3,1:"}, "fg\njk\n"},
		{"CropCols", []string{"-m", "cols", "-c", "1:3,:2"}, "bf\ncg\n"},
		{"CropItemsColMajor", []string{"-m", "items", "--order", "col", "-c", "2:,:"}, "cgkdhl\n"},
		{"Upper", []string{"--upper", "-c", ":2,2:"}, "IJ\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, letters, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestGridcat_Errors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		err   error
	}{
		{"CropOutOfRange", letters, []string{"-c", "0:9,:"}, errCropRange},
		{"CropNoComma", letters, []string{"-c", "1:3"}, errCropSpec},
		{"CropNotNumber", letters, []string{"-c", "a:b,:"}, errCropSpec},
		{"CropNegative", letters, []string{"--crop=-1:2,:"}, errCropSpec},
		{"Mode", letters, []string{"-m", "diag"}, errMode},
		{"Order", letters, []string{"--order", "z"}, errOrder},
		{"Jagged", "ab\nc\n", nil, grid.ErrJagged},
		{"Empty", "", nil, grid.ErrEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := execute(t, tc.stdin, tc.args...)
			require.ErrorIs(t, err, tc.err)
			require.Empty(t, out)
			require.Contains(t, errOut, "gridcat failed")
		})
	}
}

// TestGridcat_File reads a CRLF file given as an argument.
func TestGridcat_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("xy\r\nzw\r\n"), 0o600))

	out, _, err := execute(t, "", "-m", "cols", path)
	require.NoError(t, err)
	require.Equal(t, "xz\nyw\n", out)

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGridcat_Verbose(t *testing.T) {
	_, errOut, err := execute(t, letters, "-v")
	require.NoError(t, err)
	require.Contains(t, errOut, "grid loaded")
	require.Contains(t, errOut, "size=4x3")

	_, errOut, err = execute(t, letters)
	require.NoError(t, err)
	require.Empty(t, errOut)
}

func TestParseBounds(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Range
	}{
		{":", grid.Range{Start: 0, End: 10}},
		{"2:", grid.Range{Start: 2, End: 10}},
		{":4", grid.Range{Start: 0, End: 4}},
		{" 3:5 ", grid.Range{Start: 3, End: 5}},
	}
	for _, tc := range cases {
		b, err := parseBounds(tc.in)
		require.NoError(t, err, tc.in)
		r, ok := b.CheckedRange(10)
		require.True(t, ok, tc.in)
		require.Equal(t, tc.want, r, tc.in)
	}

	_, err := parseBounds("3")
	require.ErrorIs(t, err, errCropSpec)
}
