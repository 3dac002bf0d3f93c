// Command dungeongen runs the dungeon generation pipeline against a YAML
// config file and prints a summary of the result. It performs no mesh,
// minimap, or editor-dump export: those consumers sit outside this engine's
// scope and operate on the voxel grid and room/aisle tables directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/dungeon3d/pkg/dungeon"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output, including per-stage timings")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeongen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := dungeon.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = uint32(*seedFlag)
	}

	if *verbose {
		fmt.Printf("Candidate rooms: %d across %d floors\n", cfg.NumCandidateRooms, cfg.NumCandidateFloors)
		fmt.Printf("Aisle complexity: %d, merge rooms: %v, mission graph: %v\n",
			cfg.AisleComplexity, cfg.MergeRooms, cfg.UseMissionGraph)
	}

	gen := dungeon.NewGenerator()
	if *verbose {
		gen.OnStageComplete = func(stage string, elapsed time.Duration) {
			fmt.Printf("  [%10s] %v\n", stage, elapsed)
		}
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating dungeon...")
	}

	artifact, err := gen.Generate(ctx, *cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(start)
	printStats(artifact)
	fmt.Printf("Successfully generated dungeon (effective_seed=%d) in %v\n", artifact.EffectiveSeed, elapsed)
	return nil
}

func printStats(artifact *dungeon.Artifact) {
	fmt.Println("\nDungeon Statistics:")
	fmt.Printf("  Rooms:  %d\n", len(artifact.Rooms))
	fmt.Printf("  Aisles: %d\n", len(artifact.Aisles))
	fmt.Printf("  Voxel extent: %v\n", artifact.Voxel.Size)
	fmt.Printf("  Start point: %v\n", artifact.StartPoint)
	fmt.Printf("  Goal point:  %v\n", artifact.GoalPoint)
	fmt.Printf("  Leaf rooms:  %d\n", len(artifact.LeafPoints))
	fmt.Printf("  Effective seed: %d\n", artifact.EffectiveSeed)
	fmt.Printf("  CRC32: %08x\n", artifact.CRC32)
	fmt.Printf("  Last error: %s\n", artifact.LastError)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: dungeongen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'dungeongen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("dungeongen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural 3D dungeons.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeongen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output, including per-stage timings")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  dungeongen -config dungeon.yaml")
	fmt.Println("  dungeongen -config dungeon.yaml -seed 12345 -verbose")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies generation parameters: seed,")
	fmt.Println("  grid sizes, candidate room/floor counts, room size ranges, margins,")
	fmt.Println("  mergeRooms, flat, useMissionGraph and aisleComplexity. See")
	fmt.Println("  pkg/dungeon.Config for the full field list.")
}
