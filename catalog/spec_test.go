package catalog

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	templates, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(templates) != 13 {
		t.Fatalf("expected 13 templates, got %d", len(templates))
	}

	seen := make(map[Kind]bool)
	for _, tmpl := range templates {
		if seen[tmpl.Kind] {
			t.Fatalf("duplicate kind %q", tmpl.Kind)
		}
		seen[tmpl.Kind] = true
		if tmpl.Width <= 0 || tmpl.Height <= 0 {
			t.Fatalf("template %q has non-positive size", tmpl.Kind)
		}
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			"valid",
			"templates:\n  - type: spike\n    width: 40\n    height: 40\n    ground: true\n",
			false,
		},
		{
			"unknown_kind",
			"templates:\n  - type: laser\n    width: 40\n    height: 40\n",
			true,
		},
		{
			"zero_width",
			"templates:\n  - type: orb\n    width: 0\n    height: 36\n",
			true,
		},
		{
			"empty",
			"templates: []\n",
			true,
		},
		{
			"not_yaml",
			"{{{{",
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if (err != nil) != c.wantErr {
				t.Fatalf("expected err=%v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff4d00"`, color.NRGBA{R: 0xff, G: 0x4d, B: 0x00, A: 0xff}, false},
		{"rgba", `"#ff4d0080"`, color.NRGBA{R: 0xff, G: 0x4d, B: 0x00, A: 0x80}, false},
		{"too_short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.value), &got)
			if (err != nil) != c.wantErr {
				t.Fatalf("expected err=%v, got %v", c.wantErr, err)
			}
			if err == nil && got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestTemplateRGBADefault(t *testing.T) {
	var tmpl Template
	if got := tmpl.RGBA(); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("expected white default, got %v", got)
	}
}
