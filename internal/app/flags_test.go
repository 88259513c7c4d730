package app

import (
	"flag"
	"log/slog"
	"testing"

	"mad-sand/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "64", "-h", "32", "-matter", "wood", "-sub-steps", "4", "-scenario", "funnel", "-log-level", "debug"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	sc, err := cfg.SimConfig()
	if err != nil {
		t.Fatalf("SimConfig: %v", err)
	}
	if sc.Width != 64 || sc.Height != 32 || sc.Scenario != "funnel" {
		t.Fatalf("unexpected sim config %+v", sc)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", lvl)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cfg := NewConfig()
	cfg.Scale = 0
	cfg.Kind = "lava"
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}

	cfg = NewConfig()
	cfg.Scenario = "nope"
	if _, err := cfg.SimConfig(); err == nil {
		t.Fatal("expected unknown scenario error")
	}
}

func TestScreenToGrid(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	cases := []struct {
		mx, my int
		want   core.Point
		ok     bool
	}{
		{0, 0, core.Pt(0, 4), true},
		{19, 9, core.Pt(9, 0), true},
		{4, 3, core.Pt(2, 3), true},
		{20, 0, core.Pt(10, 4), false},
		{0, 10, core.Pt(0, -1), false},
		{-1, 0, core.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := ScreenToGrid(tc.mx, tc.my, 2, size)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ScreenToGrid(%d,%d) = %v/%v, want %v/%v", tc.mx, tc.my, got, ok, tc.want, tc.ok)
		}
	}
}
