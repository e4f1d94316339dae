package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	spec := flagSpec{"l": false, "offset": true, "len": true}

	tests := []struct {
		name     string
		tokens   []string
		expected map[string]any
		wantErr  bool
	}{
		{name: "no tokens", tokens: nil, expected: map[string]any{}},
		{name: "path only", tokens: []string{"dir"}, expected: map[string]any{"path": "dir"}},
		{name: "bool flag", tokens: []string{"-l", "dir"}, expected: map[string]any{"l": true, "path": "dir"}},
		{name: "flag after path", tokens: []string{"dir", "-l"}, expected: map[string]any{"l": true, "path": "dir"}},
		{name: "first path wins", tokens: []string{"a", "b"}, expected: map[string]any{"path": "a"}},
		{name: "unknown flag ignored", tokens: []string{"-x", "f"}, expected: map[string]any{"path": "f"}},
		{name: "bare dash ignored", tokens: []string{"-"}, expected: map[string]any{}},
		{
			name:     "value flags",
			tokens:   []string{"-offset", "8", "-len", "4", "f"},
			expected: map[string]any{"offset": "8", "len": "4", "path": "f"},
		},
		{
			name:     "value may look like a flag",
			tokens:   []string{"-offset", "-5", "f"},
			expected: map[string]any{"offset": "-5", "path": "f"},
		},
		{name: "missing flag value", tokens: []string{"f", "-len"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.tokens, spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, errFlagValueRequired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHexdumpRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        HexdumpRequest
		wantOffset uint64
		wantLength uint64
		wantErr    string
	}{
		{name: "defaults", req: HexdumpRequest{Path: "f"}},
		{name: "both values", req: HexdumpRequest{Path: "f", RawOffset: "16", RawLength: "32"}, wantOffset: 16, wantLength: 32},
		{name: "non numeric offset", req: HexdumpRequest{Path: "f", RawOffset: "abc"}, wantErr: "Invalid offset value: abc"},
		{name: "signed offset", req: HexdumpRequest{Path: "f", RawOffset: "+5"}, wantErr: "Invalid offset value: +5"},
		{name: "trailing junk length", req: HexdumpRequest{Path: "f", RawLength: "10k"}, wantErr: "Invalid length value: 10k"},
		{name: "negative length", req: HexdumpRequest{Path: "f", RawLength: "-1"}, wantErr: "Invalid length value: -1"},
		{name: "offset checked before path", req: HexdumpRequest{RawOffset: "x"}, wantErr: "Invalid offset value: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := req.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, req.Offset())
			assert.Equal(t, tt.wantLength, req.Length())
		})
	}

	missing := HexdumpRequest{}
	assert.ErrorIs(t, missing.Validate(), errPathRequired)
}
