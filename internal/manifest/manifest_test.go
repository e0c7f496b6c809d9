// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Requirement
		ok   bool
	}{
		{
			name: "pinned",
			line: "pyarrow==4.0.1",
			want: Requirement{Name: "pyarrow", Constraint: "==4.0.1"},
			ok:   true,
		},
		{
			name: "range constraint",
			line: "pandas>=1.0, <2",
			want: Requirement{Name: "pandas", Constraint: ">=1.0, <2"},
			ok:   true,
		},
		{
			name: "bare name",
			line: "requests",
			want: Requirement{Name: "requests"},
			ok:   true,
		},
		{
			name: "wheel path",
			line: "./pandas-1.1.0-cp39-none-any.whl",
			want: Requirement{Name: "./pandas-1.1.0-cp39-none-any.whl"},
			ok:   true,
		},
		{
			name: "pip-compile via trailer",
			line: "urllib3==1.26.5            # via requests",
			want: Requirement{Name: "urllib3", Constraint: "==1.26.5"},
			ok:   true,
		},
		{
			name: "comment",
			line: "# generated by pip-compile",
			ok:   false,
		},
		{
			name: "blank",
			line: "   ",
			ok:   false,
		},
		{
			name: "whitespace around specifier",
			line: "  pytest == 6.2.4  ",
			want: Requirement{Name: "pytest", Constraint: "==6.2.4"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRequirementString(t *testing.T) {
	assert.Equal(t, "pyarrow==4.0.1", Pin("pyarrow", "4.0.1").String())
	assert.Equal(t, "../pandas.whl", Path("../pandas.whl").String())
	assert.Equal(t, "requests", Requirement{Name: "requests"}.String())
}

func TestPinned(t *testing.T) {
	assert.True(t, Pin("requests", "2.25.1").Pinned())
	assert.Equal(t, "2.25.1", Pin("requests", "2.25.1").Version())

	loose := Requirement{Name: "pandas", Constraint: ">=1.0"}
	assert.False(t, loose.Pinned())
	assert.Empty(t, loose.Version())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	content := `# base requirements
requests
pandas>=1.0

pyarrow==4.0.1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reqs, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Requirement{
		{Name: "requests"},
		{Name: "pandas", Constraint: ">=1.0"},
		{Name: "pyarrow", Constraint: "==4.0.1"},
	}, reqs)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
