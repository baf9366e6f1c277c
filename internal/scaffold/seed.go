package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"

	"github.com/Faultbox/roomseed/internal/config"
	"github.com/Faultbox/roomseed/internal/logger"
	"github.com/Faultbox/roomseed/pkg/placeholder"
)

//go:embed seeds/*
var seedFS embed.FS

var seedTemplates = template.Must(template.New("seeds").ParseFS(seedFS, "seeds/*"))

// TextSeed maps a project path to the embedded template that fills it.
type TextSeed struct {
	Path     string
	Template string
}

// Texture is a placeholder PNG and its fill color.
type Texture struct {
	Path  string
	Color placeholder.Color
}

// TextSeeds returns the placeholder source files in write order.
func TextSeeds() []TextSeed {
	return []TextSeed{
		{"frontend/public/index.html", "index.html"},
		{"frontend/index.html", "index.html"},
		{"frontend/src/data/furniture/chairs.ts", "chairs.ts"},
		{"frontend/src/data/furniture/tables.ts", "tables.ts"},
		{"frontend/src/data/furniture/sofas.ts", "sofas.ts"},
		{"frontend/src/data/furniture/index.ts", "furniture_index.ts"},
		{"frontend/src/data/materials/wood.ts", "wood.ts"},
		{"frontend/src/data/materials/marble.ts", "marble.ts"},
		{"frontend/src/data/materials/fabric.ts", "fabric.ts"},
		{"frontend/src/data/materials/metal.ts", "metal.ts"},
		{"frontend/src/data/materials/index.ts", "materials_index.ts"},
		{"frontend/src/data/roomTemplates/bedroom.ts", "bedroom.ts"},
		{"frontend/src/data/roomTemplates/livingroom.ts", "livingroom.ts"},
		{"frontend/src/data/roomTemplates/kitchen.ts", "kitchen.ts"},
		{"frontend/src/data/roomTemplates/index.ts", "room_templates_index.ts"},
		{"frontend/src/data/index.ts", "data_index.ts"},
	}
}

// Textures returns the default placeholder PNGs.
func Textures() []Texture {
	return []Texture{
		{"frontend/public/assets/textures/wood/wood-oak.png", placeholder.Color{R: 150, G: 111, B: 51}},
		{"frontend/public/assets/textures/marble/carrara.png", placeholder.Color{R: 220, G: 220, B: 220}},
		{"frontend/public/assets/textures/fabric/linen-blue.png", placeholder.Color{R: 130, G: 158, B: 189}},
		{"frontend/public/assets/textures/metal/brushed-steel.png", placeholder.Color{R: 180, G: 185, B: 190}},
		{"frontend/public/assets/images/chair.png", placeholder.Color{R: 200, G: 180, B: 120}},
		{"frontend/public/assets/images/table.png", placeholder.Color{R: 175, G: 140, B: 90}},
		{"frontend/public/assets/images/sofa.png", placeholder.Color{R: 160, G: 170, B: 195}},
		{"frontend/public/assets/images/bed.png", placeholder.Color{R: 210, G: 210, B: 230}},
	}
}

// Models returns the furniture GLB placeholder paths.
func Models() []string {
	return []string{
		"frontend/public/assets/models/furniture/chair.glb",
		"frontend/public/assets/models/furniture/table.glb",
		"frontend/public/assets/models/furniture/sofa.glb",
		"frontend/public/assets/models/furniture/bed.glb",
	}
}

// Report counts what a seeding run did.
type Report struct {
	Written int
	Skipped int
}

func (r *Report) add(written bool) {
	if written {
		r.Written++
	} else {
		r.Skipped++
	}
}

// Seeder writes placeholder content under a project root.
type Seeder struct {
	root     string
	title    string
	textures []Texture
	models   bool
}

// NewSeeder builds a Seeder from cfg. Color overrides must name a known
// texture path and hold a valid color.
func NewSeeder(cfg *config.Config) (*Seeder, error) {
	textures := Textures()
	index := make(map[string]int, len(textures))
	for i, t := range textures {
		index[t.Path] = i
	}

	for p, v := range cfg.Assets.Colors {
		i, ok := index[filepath.ToSlash(p)]
		if !ok {
			return nil, fmt.Errorf("color override for unknown texture %q", p)
		}
		c, err := placeholder.ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("color override for %s: %w", p, err)
		}
		textures[i].Color = c
	}

	return &Seeder{
		root:     cfg.Project.Root,
		title:    cfg.Project.Title,
		textures: textures,
		models:   cfg.Assets.Models,
	}, nil
}

// Textures returns the textures this seeder writes, overrides applied.
func (s *Seeder) Textures() []Texture {
	return append([]Texture(nil), s.textures...)
}

// Seed writes text seeds, then PNG textures, then GLB models. Existing
// non-empty files are left alone. The first error aborts the run.
func (s *Seeder) Seed() (Report, error) {
	var rep Report

	data := struct{ Title string }{Title: s.title}
	for _, ts := range TextSeeds() {
		var buf bytes.Buffer
		if err := seedTemplates.ExecuteTemplate(&buf, ts.Template, data); err != nil {
			return rep, fmt.Errorf("rendering %s: %w", ts.Path, err)
		}
		written, err := EnsureText(s.path(ts.Path), buf.String())
		if err != nil {
			return rep, err
		}
		rep.add(written)
	}

	for _, t := range s.textures {
		written, err := EnsureBinary(s.path(t.Path), placeholder.EncodePNG(t.Color))
		if err != nil {
			return rep, err
		}
		if written {
			logger.Debug("encoded texture", logger.Path(t.Path), zap.String("color", t.Color.Hex()))
		}
		rep.add(written)
	}

	if s.models {
		glb := placeholder.EncodeGLB()
		for _, m := range Models() {
			written, err := EnsureBinary(s.path(m), glb)
			if err != nil {
				return rep, err
			}
			rep.add(written)
		}
	}

	logger.Info("seeded placeholders",
		zap.Int("written", rep.Written),
		zap.Int("skipped", rep.Skipped),
	)
	return rep, nil
}

func (s *Seeder) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Init materializes Layout under the configured root and seeds it. With
// models disabled the GLB paths are left out of the tree.
func Init(cfg *config.Config) (Stats, Report, error) {
	seeder, err := NewSeeder(cfg)
	if err != nil {
		return Stats{}, Report{}, err
	}

	tree := Layout()
	if !cfg.Assets.Models {
		tree = Without(tree, Models()...)
	}

	st, err := Materialize(cfg.Project.Root, tree)
	if err != nil {
		return st, Report{}, fmt.Errorf("materializing tree: %w", err)
	}
	logger.Info("materialized project tree",
		logger.Path(cfg.Project.Root),
		zap.Int("dirs", st.Dirs),
		zap.Int("files", st.Files),
		zap.Int("existing", st.Skipped),
	)

	rep, err := seeder.Seed()
	if err != nil {
		return st, rep, fmt.Errorf("seeding placeholders: %w", err)
	}
	return st, rep, nil
}
