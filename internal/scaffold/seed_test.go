package scaffold

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/roomseed/internal/config"
	"github.com/Faultbox/roomseed/pkg/placeholder"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Project.Root = t.TempDir()
	return cfg
}

func TestInit(t *testing.T) {
	cfg := testConfig(t)

	st, rep, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if st.Files == 0 || st.Dirs == 0 {
		t.Errorf("expected tree to be created, got %+v", st)
	}

	want := len(TextSeeds()) + len(Textures()) + len(Models())
	if rep.Written != want || rep.Skipped != 0 {
		t.Errorf("expected %d writes, got %+v", want, rep)
	}

	html, err := os.ReadFile(filepath.Join(cfg.Project.Root, "frontend", "public", "index.html"))
	if err != nil {
		t.Fatalf("failed to read index.html: %v", err)
	}
	if !strings.Contains(string(html), "<title>Interior Designer 3D</title>") {
		t.Errorf("index.html missing title:\n%s", html)
	}

	chairs, err := os.ReadFile(filepath.Join(cfg.Project.Root, "frontend", "src", "data", "furniture", "chairs.ts"))
	if err != nil {
		t.Fatalf("failed to read chairs.ts: %v", err)
	}
	if !strings.Contains(string(chairs), "modelPath: '/assets/models/furniture/chair.glb'") {
		t.Errorf("unexpected chairs.ts:\n%s", chairs)
	}
}

func TestInitTwice(t *testing.T) {
	cfg := testConfig(t)

	if _, _, err := Init(cfg); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	glbPath := filepath.Join(cfg.Project.Root, filepath.FromSlash(Models()[0]))
	before, err := os.ReadFile(glbPath)
	if err != nil {
		t.Fatalf("failed to read model: %v", err)
	}

	st, rep, err := Init(cfg)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if st.Files != 0 || st.Dirs != 0 {
		t.Errorf("second run created tree entries: %+v", st)
	}
	if rep.Written != 0 {
		t.Errorf("second run wrote %d files", rep.Written)
	}

	after, _ := os.ReadFile(glbPath)
	if !bytes.Equal(before, after) {
		t.Error("model bytes changed on second run")
	}
}

func TestSeedTextures(t *testing.T) {
	cfg := testConfig(t)
	seeder, err := NewSeeder(cfg)
	if err != nil {
		t.Fatalf("NewSeeder failed: %v", err)
	}
	if _, err := seeder.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	for _, tex := range Textures() {
		f, err := os.Open(filepath.Join(cfg.Project.Root, filepath.FromSlash(tex.Path)))
		if err != nil {
			t.Fatalf("failed to open %s: %v", tex.Path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: png.Decode failed: %v", tex.Path, err)
		}
		r, g, b, _ := img.At(0, 0).RGBA()
		got := placeholder.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if got != tex.Color {
			t.Errorf("%s: pixel %v, want %v", tex.Path, got, tex.Color)
		}
	}
}

func TestSeedModels(t *testing.T) {
	cfg := testConfig(t)
	seeder, err := NewSeeder(cfg)
	if err != nil {
		t.Fatalf("NewSeeder failed: %v", err)
	}
	if _, err := seeder.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	for _, m := range Models() {
		data, err := os.ReadFile(filepath.Join(cfg.Project.Root, filepath.FromSlash(m)))
		if err != nil {
			t.Fatalf("failed to read %s: %v", m, err)
		}
		info, err := placeholder.InspectGLB(data)
		if err != nil {
			t.Fatalf("%s: InspectGLB failed: %v", m, err)
		}
		if info.Version != 2 {
			t.Errorf("%s: expected version 2, got %d", m, info.Version)
		}
	}
}

func TestSeedWithoutModels(t *testing.T) {
	cfg := testConfig(t)
	cfg.Assets.Models = false

	seeder, err := NewSeeder(cfg)
	if err != nil {
		t.Fatalf("NewSeeder failed: %v", err)
	}
	rep, err := seeder.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if want := len(TextSeeds()) + len(Textures()); rep.Written != want {
		t.Errorf("expected %d writes, got %d", want, rep.Written)
	}
	if _, err := os.Stat(filepath.Join(cfg.Project.Root, filepath.FromSlash(Models()[0]))); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no model file, got %v", err)
	}
}

func TestInitWithoutModels(t *testing.T) {
	cfg := testConfig(t)
	cfg.Assets.Models = false

	_, rep, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if want := len(TextSeeds()) + len(Textures()); rep.Written != want {
		t.Errorf("expected %d writes, got %d", want, rep.Written)
	}

	for _, m := range Models() {
		if _, err := os.Stat(filepath.Join(cfg.Project.Root, filepath.FromSlash(m))); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: expected no file, got %v", m, err)
		}
	}
	furniture := filepath.Join(cfg.Project.Root, "frontend", "public", "assets", "models", "furniture")
	if info, err := os.Stat(furniture); err != nil || !info.IsDir() {
		t.Errorf("expected models/furniture directory to exist: %v", err)
	}
}

func TestSeedTitle(t *testing.T) {
	cfg := testConfig(t)
	cfg.Project.Title = "Loft Planner"

	seeder, err := NewSeeder(cfg)
	if err != nil {
		t.Fatalf("NewSeeder failed: %v", err)
	}
	if _, err := seeder.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	html, _ := os.ReadFile(filepath.Join(cfg.Project.Root, "frontend", "index.html"))
	if !strings.Contains(string(html), "<title>Loft Planner</title>") {
		t.Errorf("title not applied:\n%s", html)
	}
}

func TestSeedTitleEscaped(t *testing.T) {
	cfg := testConfig(t)
	cfg.Project.Title = `Tom & Jerry <b>"Rooms"</b>`

	seeder, err := NewSeeder(cfg)
	if err != nil {
		t.Fatalf("NewSeeder failed: %v", err)
	}
	if _, err := seeder.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	html, _ := os.ReadFile(filepath.Join(cfg.Project.Root, "frontend", "index.html"))
	want := "<title>Tom &amp; Jerry &lt;b&gt;&#34;Rooms&#34;&lt;/b&gt;</title>"
	if !strings.Contains(string(html), want) {
		t.Errorf("title not escaped, want %s in:\n%s", want, html)
	}
}

func TestNewSeederColorOverrides(t *testing.T) {
	wood := "frontend/public/assets/textures/wood/wood-oak.png"

	tests := []struct {
		name    string
		colors  map[string]string
		want    placeholder.Color
		wantErr bool
	}{
		{"hex", map[string]string{wood: "#102030"}, placeholder.Color{R: 16, G: 32, B: 48}, false},
		{"triple", map[string]string{wood: "1,2,3"}, placeholder.Color{R: 1, G: 2, B: 3}, false},
		{"unknown path", map[string]string{"nope.png": "#000000"}, placeholder.Color{}, true},
		{"bad channel", map[string]string{wood: "1,2,999"}, placeholder.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Assets.Colors = tt.colors

			seeder, err := NewSeeder(cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSeeder failed: %v", err)
			}
			if got := seeder.Textures()[0]; got.Path != wood || got.Color != tt.want {
				t.Errorf("expected %s %v, got %+v", wood, tt.want, got)
			}
		})
	}
}

func TestTextSeedsRender(t *testing.T) {
	for _, ts := range TextSeeds() {
		var buf bytes.Buffer
		if err := seedTemplates.ExecuteTemplate(&buf, ts.Template, struct{ Title string }{"T"}); err != nil {
			t.Errorf("%s: %v", ts.Path, err)
			continue
		}
		if strings.TrimSpace(buf.String()) == "" {
			t.Errorf("%s renders empty", ts.Path)
		}
	}
}
