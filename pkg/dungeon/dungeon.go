package dungeon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/identifier"
	"github.com/dshills/dungeon3d/pkg/mission"
	"github.com/dshills/dungeon3d/pkg/placement"
	"github.com/dshills/dungeon3d/pkg/rng"
	"github.com/dshills/dungeon3d/pkg/voxel"
)

// Generator runs the full generation pipeline for a validated Config.
type Generator interface {
	Generate(ctx context.Context, cfg Config) (*Artifact, error)
}

// DefaultGenerator is the reference Generator: each generation attempt
// creates its own identifier allocator (spec.md section 5's resource
// policy: no allocator is shared between runs, so generations stay
// reproducible without any process-wide global state).
type DefaultGenerator struct {
	// OnStageComplete, if set, is called after each pipeline stage with
	// its name and elapsed wall-clock time. Nil by default; the CLI wires
	// it to print per-stage timings under -verbose.
	OnStageComplete func(stage string, elapsed time.Duration)
}

// NewGenerator returns a ready-to-use DefaultGenerator.
func NewGenerator() *DefaultGenerator {
	return &DefaultGenerator{}
}

func (g *DefaultGenerator) stage(name string, fn func()) {
	start := time.Now()
	fn()
	if g.OnStageComplete != nil {
		g.OnStageComplete(name, time.Since(start))
	}
}

// Generate runs the pipeline to completion, making at most
// cfg.effectiveMaxRetries() attempts in total on spec.md section 7's retryable failure
// kinds, each attempt reseeded from rng.DeriveSeed(masterSeed, attempt)
// (attempt 0 uses masterSeed directly, so an unretried run's output is
// unchanged from before retries existed).
func (g *DefaultGenerator) Generate(ctx context.Context, cfg Config) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dungeon: invalid config: %w", err)
	}

	masterSeed := cfg.resolveMasterSeed()
	maxRetries := cfg.effectiveMaxRetries()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		effectiveSeed := masterSeed
		if attempt > 0 {
			effectiveSeed = rng.DeriveSeed(masterSeed, attempt)
		}

		artifact, err := g.attempt(ctx, cfg, effectiveSeed)
		if err == nil {
			return artifact, nil
		}

		var genErr *GenerationError
		if !errors.As(err, &genErr) || !genErr.Kind.retryable() {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("dungeon: exhausted %d attempts: %w", maxRetries, lastErr)
}

// attempt runs one full pipeline pass with a single fixed seed.
func (g *DefaultGenerator) attempt(ctx context.Context, cfg Config, seed uint32) (*Artifact, error) {
	alloc := identifier.NewAllocator()
	r := rng.NewRNG(seed)
	perlin := rng.NewPerlin(r)

	hMargin := int(cfg.HorizontalRoomMargin)
	vMargin := int(cfg.VerticalRoomMargin)
	numFloors := int(cfg.NumCandidateFloors)
	if cfg.Flat {
		numFloors = 1
	}

	var rooms []*graph.Room
	g.stage("placement", func() {
		rooms = placement.Scatter(alloc, r, perlin, placement.ScatterParams{
			NumRooms:         int(cfg.NumCandidateRooms),
			NumFloors:        numFloors,
			Width:            placement.Range{Min: int(cfg.RoomWidth.Min), Max: int(cfg.RoomWidth.Max)},
			Depth:            placement.Range{Min: int(cfg.RoomDepth.Min), Max: int(cfg.RoomDepth.Max)},
			Height:           placement.Range{Min: int(cfg.RoomHeight.Min), Max: int(cfg.RoomHeight.Max)},
			HorizontalMargin: hMargin,
		})
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var extent geometry.Vec3
	var sepErr error
	g.stage("separation", func() {
		rooms, sepErr = placement.Separate(rooms, r, hMargin, vMargin)
		if sepErr != nil {
			return
		}
		extent = placement.Canonicalize(rooms)
		rooms = placement.Prune(rooms, extent, hMargin, vMargin)
		extent = placement.Canonicalize(rooms)
	})
	if sepErr != nil {
		return nil, newGenerationError(SeparateRoomsFailed, sepErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var aisles []*graph.Aisle
	lastErrorKind := Success
	g.stage("graph", func() {
		verts := graph.VerticesFromRooms(rooms)
		aisles = graph.BuildAisles(alloc, r, verts, int(cfg.AisleComplexity))
		if len(rooms) >= 4 && len(aisles) == 0 {
			lastErrorKind = TriangulationFailed
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sem graph.Semantics
	g.stage("semantics", func() {
		sem = graph.DeriveSemantics(rooms, aisles)
	})

	if sem.Start != nil && cfg.StartRoomSize != nil {
		sem.Start.Size = *cfg.StartRoomSize
	}
	if sem.Goal != nil && cfg.GoalRoomSize != nil {
		sem.Goal.Size = *cfg.GoalRoomSize
	}
	if (cfg.StartRoomSize != nil || cfg.GoalRoomSize != nil) && sem.Start != nil {
		extent = placement.Canonicalize(rooms)
	}

	if sem.Start != nil {
		if !sem.Start.Box().Contains(sem.Start.GroundCenter().Round()) {
			return nil, newGenerationError(GoalPointIsOutsideGoalRange,
				fmt.Errorf("start room %s's ground center falls outside its own bounds", sem.Start.ID))
		}
	}
	if sem.Goal != nil {
		if !sem.Goal.Box().Contains(sem.Goal.GroundCenter().Round()) {
			return nil, newGenerationError(GoalPointIsOutsideGoalRange,
				fmt.Errorf("goal room %s's ground center falls outside its own bounds", sem.Goal.ID))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.UseMissionGraph && sem.Goal != nil {
		g.stage("mission", func() {
			mission.Place(r, rooms, aisles, sem.Goal)
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := voxel.NewGrid(extent)
	var routeErr error
	g.stage("voxelization", func() {
		voxel.PaintRooms(grid, rooms)
		routeErr = voxel.RouteAisles(grid, aisles)
	})
	if routeErr != nil {
		switch {
		case errors.Is(routeErr, voxel.ErrGateSearchFailed):
			return nil, newGenerationError(GateSearchFailed, routeErr)
		default:
			return nil, newGenerationError(RouteSearchFailed, routeErr)
		}
	}

	artifact := &Artifact{
		Voxel:         grid,
		Rooms:         rooms,
		Aisles:        aisles,
		EffectiveSeed: seed,
		LastError:     lastErrorKind,
	}
	if sem.Start != nil {
		artifact.StartPoint = sem.Start.GroundCenter()
	}
	if sem.Goal != nil {
		artifact.GoalPoint = sem.Goal.GroundCenter()
	}
	for _, leaf := range sem.Leaves {
		artifact.LeafPoints = append(artifact.LeafPoints, leaf.GroundCenter())
	}
	g.stage("verification", func() {
		artifact.CRC32 = grid.CRC32()
	})

	return artifact, nil
}
