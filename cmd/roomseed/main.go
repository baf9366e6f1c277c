// roomseed scaffolds the Interior Designer 3D project tree and writes
// placeholder textures and models into it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/roomseed/internal/config"
	"github.com/Faultbox/roomseed/internal/logger"
	"github.com/Faultbox/roomseed/internal/scaffold"
	"github.com/Faultbox/roomseed/pkg/placeholder"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	command := "init"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "init":
		err = cmdInit(cfg, args)
	case "png":
		err = cmdPNG(args)
	case "glb":
		err = cmdGLB(args)
	case "tree":
		err = cmdTree(args)
	case "inspect":
		err = cmdInspect(args)
	case "config":
		err = cfg.Encode(os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`roomseed - Interior Designer 3D project scaffolding

Usage:
  roomseed [flags] <command> [arguments]

Commands:
  init [dir]                 Create the project tree and seed placeholders (default)
  png <color> <out.png>      Write a 1x1 PNG (#rrggbb or r,g,b) unless out exists
  glb <out.glb>              Write the placeholder triangle GLB unless out exists
  tree                       Print the project layout
  inspect <file>             Show the chunk structure of a PNG or GLB
  config                     Print the effective configuration

Flags:
  -config <file>    Config file (default: ./roomseed.yaml, then user config dir)
  -root <dir>       Project root directory
  -title <text>     Page title for index.html seeds
  -no-models        Skip GLB model placeholders
  -log-file <file>  Also write logs to a rotating file
  -debug            Enable debug logging

Examples:
  roomseed
  roomseed -root ./interior init
  roomseed png "#966f33" wood-oak.png
  roomseed inspect frontend/public/assets/models/furniture/chair.glb`)
}

func cmdInit(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.Project.Root = args[0]
	}

	st, rep, err := scaffold.Init(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Project structure created in %s\n", cfg.Project.Root)
	fmt.Printf("  directories: %d new\n", st.Dirs)
	fmt.Printf("  files:       %d new, %d existing\n", st.Files, st.Skipped)
	fmt.Printf("  seeds:       %d written, %d kept\n", rep.Written, rep.Skipped)
	return nil
}

func cmdPNG(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: roomseed png <color> <out.png>")
	}

	c, err := placeholder.ParseColor(args[0])
	if err != nil {
		return err
	}
	written, err := scaffold.EnsureBinary(args[1], placeholder.EncodePNG(c))
	if err != nil {
		return err
	}
	reportWrite(args[1], written)
	return nil
}

func cmdGLB(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: roomseed glb <out.glb>")
	}

	written, err := scaffold.EnsureBinary(args[0], placeholder.EncodeGLB())
	if err != nil {
		return err
	}
	reportWrite(args[0], written)
	return nil
}

func reportWrite(path string, written bool) {
	if written {
		fmt.Printf("Wrote %s\n", path)
		return
	}
	fmt.Printf("Kept %s (already has content)\n", path)
}

func cmdTree(args []string) error {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	dirsOnly := fs.Bool("d", false, "List directories only")
	fs.Parse(args)

	return scaffold.Walk(scaffold.Layout(), func(rel string, n scaffold.Node) error {
		if rel == "" {
			return nil
		}
		if n.Kind == scaffold.KindFile && *dirsOnly {
			return nil
		}
		depth := strings.Count(rel, "/")
		name := n.Name
		if n.Kind == scaffold.KindDir {
			name += "/"
		}
		fmt.Printf("%s%s\n", strings.Repeat("  ", depth), name)
		return nil
	})
}

func cmdInspect(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: roomseed inspect <file>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".png":
		info, err := placeholder.InspectPNG(data)
		if err != nil {
			return err
		}
		fmt.Printf("PNG %dx%d, bit depth %d, color type %d\n", info.Width, info.Height, info.BitDepth, info.ColorType)
		for _, c := range info.Chunks {
			fmt.Printf("  %-4s %6d bytes  crc %08x\n", c.Tag, c.Length, c.CRC)
		}
	case ".glb":
		info, err := placeholder.InspectGLB(data)
		if err != nil {
			return err
		}
		fmt.Printf("GLB version %d, %d bytes\n", info.Version, info.Length)
		for _, c := range info.Chunks {
			fmt.Printf("  %-4s %6d bytes\n", c.Tag, c.Length)
		}
		doc := info.Document
		fmt.Printf("  generator: %s\n", doc.Asset.Generator)
		fmt.Printf("  meshes: %d, accessors: %d, buffer views: %d\n", len(doc.Meshes), len(doc.Accessors), len(doc.BufferViews))
		for i, a := range doc.Accessors {
			fmt.Printf("  accessor %d: %s x%d min %v max %v\n", i, a.Type, a.Count, a.Min, a.Max)
		}
	default:
		return fmt.Errorf("inspect: unsupported file type %q", filepath.Ext(args[0]))
	}
	return nil
}
