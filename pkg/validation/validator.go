package validation

import (
	"context"

	"github.com/dshills/dungeon3d/pkg/dungeon"
)

// Validate generates a dungeon under cfg and runs every applicable
// testable-property check against the result, returning the aggregate
// report.
func Validate(ctx context.Context, gen dungeon.Generator, cfg dungeon.Config) (*Report, error) {
	artifact, err := gen.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return ValidateArtifact(ctx, gen, cfg, artifact), nil
}

// ValidateArtifact runs the testable-property checks against an
// already-produced artifact. Determinism additionally regenerates cfg
// through gen, since that property cannot be judged from a single
// artifact alone.
func ValidateArtifact(ctx context.Context, gen dungeon.Generator, cfg dungeon.Config, artifact *dungeon.Artifact) *Report {
	report := NewReport()
	report.add(CheckNoOverlaps(artifact))
	report.add(CheckCanonicalOrigin(artifact))
	report.add(CheckReachability(artifact))
	report.add(CheckMSTCorrectness(artifact))
	report.add(CheckLockSolvability(artifact))
	report.add(CheckCRCStability(artifact))
	report.add(CheckDeterminism(ctx, gen, cfg))
	return report
}
