package main

import "testing"

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", nil, 1, false},
		{"explicit", []string{"3"}, 3, false},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-2"}, 0, true},
		{"not_a_number", []string{"all"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSteps(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSteps(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "down"}, {"migrate", "version"}, {"sweep"}} {
		cmd, _, err := root.Find(path)
		if err != nil {
			t.Fatalf("expected command %v, got error: %v", path, err)
		}
		if cmd.Name() != path[len(path)-1] {
			t.Errorf("expected %v to resolve to %q, got %q", path, path[len(path)-1], cmd.Name())
		}
	}
}
