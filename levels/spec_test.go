package levels

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: tiny
rows:
  - "####"
  - "#P.#"
  - "####"
`)
	spec, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if spec.Name != "tiny" {
		t.Errorf("name = %q, want tiny", spec.Name)
	}
	if spec.Width() != 4 || spec.Height() != 3 {
		t.Errorf("dimensions = %dx%d, want 4x3", spec.Width(), spec.Height())
	}
	if spec.TileSize != DefaultTileSize {
		t.Errorf("tile size = %d, want default %d", spec.TileSize, DefaultTileSize)
	}
}

func TestParseRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not_yaml",
			yaml:    "rows: [}",
			wantErr: "unmarshal",
		},
		{
			name:    "no_rows",
			yaml:    "name: empty",
			wantErr: "no rows",
		},
		{
			name: "ragged_rows",
			yaml: "rows: [\"###\", \"#P\"]",

			wantErr: "length",
		},
		{
			name:    "unknown_cell",
			yaml:    "rows: [\"#P?\"]",
			wantErr: "unknown cell",
		},
		{
			name:    "no_spawn",
			yaml:    "rows: [\"#..#\"]",
			wantErr: "spawn",
		},
		{
			name:    "two_spawns",
			yaml:    "rows: [\"#PP#\"]",
			wantErr: "spawn",
		},
		{
			name:    "costs_wrong_height",
			yaml:    "rows: [\"#P#\"]\ncosts: [\"111\", \"111\"]",
			wantErr: "costs",
		},
		{
			name:    "costs_wrong_width",
			yaml:    "rows: [\"#P#\"]\ncosts: [\"11\"]",
			wantErr: "costs",
		},
		{
			name:    "costs_not_digits",
			yaml:    "rows: [\"#P#\"]\ncosts: [\"1a1\"]",
			wantErr: "digit",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{"intro", "warren.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if spec.Width() == 0 || spec.Height() == 0 {
				t.Fatalf("level %q is empty", name)
			}
		})
	}

	if _, err := Load("no-such-level"); err == nil {
		t.Fatal("expected an error for a missing level")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["intro"] || !found["warren"] {
		t.Fatalf("Names() = %v, want it to include intro and warren", names)
	}
}
