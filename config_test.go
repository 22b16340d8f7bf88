package bramble

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestLoadRunConfig(t *testing.T) {
	cfg, err := LoadRunConfig([]byte(`
title: demo
width: 1024
show_fps: true
clear_color: "#202028ff"
tps: 30
`))
	if err != nil {
		t.Fatal(err)
	}
	want := RunConfig{
		Title:      "demo",
		Width:      1024,
		Height:     defaultHeight,
		Resizable:  true,
		ClearColor: ColorFromUint32(0x202028ff),
		ShowFPS:    true,
		TPS:        30,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRunConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := LoadRunConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultRunConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRunConfigColorForms(t *testing.T) {
	type tc struct {
		in   string
		want Color
	}
	tests := map[string]tc{
		"hex":    {in: `clear_color: "#ff0000ff"`, want: ColorRed},
		"tuple":  {in: `clear_color: "(0, 0, 255, 255)"`, want: ColorBlue},
		"number": {in: `clear_color: 0x00ff00ff`, want: ColorGreen},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadRunConfig([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.ClearColor != tt.want {
				t.Errorf("ClearColor = %v, want %v", cfg.ClearColor, tt.want)
			}
		})
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	if _, err := LoadRunConfig([]byte(`clear_color: "purple"`)); !errors.Is(err, ErrColorFormat) {
		t.Errorf("err = %v, want ErrColorFormat", err)
	}
	if _, err := LoadRunConfig([]byte("clear_color: [1, 2]")); !errors.Is(err, ErrColorFormat) {
		t.Errorf("err = %v, want ErrColorFormat", err)
	}
	if _, err := LoadRunConfig([]byte("width: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestColorMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		C Color `yaml:"c"`
	}{ColorRed})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); got != "c: '#ff0000ff'\n" {
		t.Errorf("yaml = %q", got)
	}
}

func TestRunConfigWithDefaults(t *testing.T) {
	got := RunConfig{Width: 300}.withDefaults()
	if got.Title != defaultTitle || got.Width != 300 || got.Height != defaultHeight {
		t.Errorf("withDefaults = %+v", got)
	}
}
