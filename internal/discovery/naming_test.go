package discovery

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

func TestPadder_Pad(t *testing.T) {
	tests := []struct {
		name     string
		padder   Padder
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "single character at width 10",
			padder:   Padder{Width: 10},
			input:    "x",
			expected: "x         ",
		},
		{
			name:     "exact width is untouched",
			padder:   Padder{Width: 7},
			input:    "add.bin",
			expected: "add.bin",
		},
		{
			name:    "too long is rejected",
			padder:  Padder{Width: 4, Policy: RejectLongNames},
			input:   "add.bin",
			wantErr: true,
		},
		{
			name:     "too long is kept unpadded",
			padder:   Padder{Width: 4, Policy: KeepLongNames},
			input:    "add.bin",
			expected: "add.bin",
		},
		{
			name:     "wide runes count as two columns",
			padder:   Padder{Width: 6},
			input:    "测试",
			expected: "测试  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.padder.Pad(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNameTooLong))
				var tooLong *NameTooLongError
				require.ErrorAs(t, err, &tooLong)
				assert.Equal(t, tt.input, tooLong.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLongNamePolicy(t *testing.T) {
	p, err := ParseLongNamePolicy(config.LongNamesReject)
	require.NoError(t, err)
	assert.Equal(t, RejectLongNames, p)

	p, err = ParseLongNamePolicy(config.LongNamesUnpadded)
	require.NoError(t, err)
	assert.Equal(t, KeepLongNames, p)

	_, err = ParseLongNamePolicy("truncate")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	root := filepath.Join("external", "bin-files")
	paths := []string{
		filepath.Join(root, "add.bin"),
		filepath.Join(root, "sub.bin"),
	}

	t.Run("strips corpus prefix and pads", func(t *testing.T) {
		tests, err := Build(root+string(filepath.Separator), paths, Padder{Width: 10})
		require.NoError(t, err)

		assert.Equal(t, []domain.TestCase{
			{Path: paths[0], DisplayName: "add.bin   ", Mode: domain.ModeBaseline},
			{Path: paths[1], DisplayName: "sub.bin   ", Mode: domain.ModeBaseline},
		}, tests)
	})

	t.Run("reports every name that is too long", func(t *testing.T) {
		_, err := Build(root, paths, Padder{Width: 3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNameTooLong))
		assert.Contains(t, err.Error(), "add.bin")
		assert.Contains(t, err.Error(), "sub.bin")
	})

	t.Run("empty corpus", func(t *testing.T) {
		tests, err := Build(root, nil, Padder{Width: 3})
		require.NoError(t, err)
		assert.Empty(t, tests)
	})
}

func TestExpand(t *testing.T) {
	base := []domain.TestCase{
		{Path: "c/add.bin", DisplayName: "add.bin "},
		{Path: "c/sub.bin", DisplayName: "sub.bin "},
		{Path: "c/mul.bin", DisplayName: "mul.bin "},
	}
	snapshot := append([]domain.TestCase(nil), base...)

	t.Run("disabled is identity", func(t *testing.T) {
		assert.Equal(t, base, Expand(base, false))
	})

	t.Run("appends accelerated copies after the baseline entries", func(t *testing.T) {
		got := Expand(base, true)

		require.Len(t, got, 2*len(base))
		assert.Equal(t, base, got[:len(base)])
		for i, tc := range got[len(base):] {
			assert.Equal(t, base[i].Path, tc.Path)
			assert.Equal(t, base[i].DisplayName, tc.DisplayName)
			assert.Equal(t, domain.ModeAccelerated, tc.Mode)
		}
		assert.Equal(t, snapshot, base, "input must not be modified")
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, Expand(nil, true))
	})
}
