package cmd

import (
	"reflect"
	"testing"
)

func TestExtractConfigFlag(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantArgs []string
		wantFile string
	}{
		{
			name:     "absent",
			args:     []string{"list", "-n", "3"},
			wantArgs: []string{"list", "-n", "3"},
			wantFile: "fallback.yaml",
		},
		{
			name:     "separate value",
			args:     []string{"--config", "/tmp/c.yaml", "list"},
			wantArgs: []string{"list"},
			wantFile: "/tmp/c.yaml",
		},
		{
			name:     "equals form after the action",
			args:     []string{"list", "--config=/tmp/c.yaml", "-n", "3"},
			wantArgs: []string{"list", "-n", "3"},
			wantFile: "/tmp/c.yaml",
		},
		{
			name:     "dangling flag is left alone",
			args:     []string{"list", "--config"},
			wantArgs: []string{"list", "--config"},
			wantFile: "fallback.yaml",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			args, file := extractConfigFlag(tc.args, "fallback.yaml")
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
			if file != tc.wantFile {
				t.Errorf("file = %q, want %q", file, tc.wantFile)
			}
		})
	}
}
