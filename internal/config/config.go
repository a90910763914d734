package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

type Config struct {
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	DBHost string `toml:"db_host"`
	DBPort string `toml:"db_port"`
	DBName string `toml:"db_name"`
	// prometheus
	PrometheusPort int `toml:"prometheus_port"`

	Domain Domain `toml:"domain"`
}

// Domain holds the selection engine constants. Every value has a default so
// an empty [domain] table yields a working engine; overrides are for tuning,
// not for operation.
type Domain struct {
	// VolumeUnit is the per-exercise muscle volume unit: the amount of weekly
	// volume a single exercise in a single workout is assumed to provide.
	VolumeUnit float64 `toml:"volume_unit"`
	// TimeToRepFactor normalizes time-under-tension seconds against reps.
	// The 2.5 divisor comes from the source material without a documented
	// derivation; kept overridable pending domain-expert review.
	TimeToRepFactor float64 `toml:"time_to_rep_factor"`
	// VolumeWindowWeeks is how many weeks of delivered-workout history feed
	// the rolling weekly volume estimate.
	VolumeWindowWeeks int `toml:"volume_window_weeks"`
	// MinHistoryWeeks is the minimum number of distinct delivered weeks
	// before the volume estimate is considered known at all.
	MinHistoryWeeks int `toml:"min_history_weeks"`
	// SecondaryMuscleWeight / StabilizerMuscleWeight scale how much stretched
	// and stabilized involvement counts against a muscle target, relative to
	// strengthened involvement.
	SecondaryMuscleWeight  float64 `toml:"secondary_muscle_weight"`
	StabilizerMuscleWeight float64 `toml:"stabilizer_muscle_weight"`
	// UniqueMusclesPerExercise is the starting X of the at-least-X-unique-
	// muscles policy; backed off down to 1 when no candidate qualifies.
	UniqueMusclesPerExercise int `toml:"unique_muscles_per_exercise"`
	// MaxExercisesPerSection caps how many variations one section pass picks.
	MaxExercisesPerSection int `toml:"max_exercises_per_section"`
	// CoreExerciseMultiplier boosts the pick weight of core-flagged exercises.
	CoreExerciseMultiplier float64 `toml:"core_exercise_multiplier"`
}

func DefaultDomain() Domain {
	return Domain{
		VolumeUnit:               100,
		TimeToRepFactor:          2.5,
		VolumeWindowWeeks:        12,
		MinHistoryWeeks:          1,
		SecondaryMuscleWeight:    0.5,
		StabilizerMuscleWeight:   0.25,
		UniqueMusclesPerExercise: 3,
		MaxExercisesPerSection:   6,
		CoreExerciseMultiplier:   2,
	}
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	cfg.Domain = cfg.Domain.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (d Domain) withDefaults() Domain {
	def := DefaultDomain()
	if d.VolumeUnit == 0 {
		d.VolumeUnit = def.VolumeUnit
	}
	if d.TimeToRepFactor == 0 {
		d.TimeToRepFactor = def.TimeToRepFactor
	}
	if d.VolumeWindowWeeks == 0 {
		d.VolumeWindowWeeks = def.VolumeWindowWeeks
	}
	if d.MinHistoryWeeks == 0 {
		d.MinHistoryWeeks = def.MinHistoryWeeks
	}
	if d.SecondaryMuscleWeight == 0 {
		d.SecondaryMuscleWeight = def.SecondaryMuscleWeight
	}
	if d.StabilizerMuscleWeight == 0 {
		d.StabilizerMuscleWeight = def.StabilizerMuscleWeight
	}
	if d.UniqueMusclesPerExercise == 0 {
		d.UniqueMusclesPerExercise = def.UniqueMusclesPerExercise
	}
	if d.MaxExercisesPerSection == 0 {
		d.MaxExercisesPerSection = def.MaxExercisesPerSection
	}
	if d.CoreExerciseMultiplier == 0 {
		d.CoreExerciseMultiplier = def.CoreExerciseMultiplier
	}
	return d
}

// Validate rejects a broken configuration before any selection run starts.
func (c *Config) Validate() error {
	var errs error
	if c.DBHost == "" {
		errs = multierr.Append(errs, fmt.Errorf("db_host not set"))
	}
	if c.DBName == "" {
		errs = multierr.Append(errs, fmt.Errorf("db_name not set"))
	}
	errs = multierr.Append(errs, c.Domain.Validate())
	return errs
}

func (d Domain) Validate() error {
	var errs error
	if d.VolumeUnit <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("volume_unit must be positive, got %v", d.VolumeUnit))
	}
	if d.TimeToRepFactor <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("time_to_rep_factor must be positive, got %v", d.TimeToRepFactor))
	}
	if d.VolumeWindowWeeks < 1 {
		errs = multierr.Append(errs, fmt.Errorf("volume_window_weeks must be at least 1, got %d", d.VolumeWindowWeeks))
	}
	if d.MinHistoryWeeks < 1 {
		errs = multierr.Append(errs, fmt.Errorf("min_history_weeks must be at least 1, got %d", d.MinHistoryWeeks))
	}
	if d.SecondaryMuscleWeight < 0 || d.SecondaryMuscleWeight > 1 {
		errs = multierr.Append(errs, fmt.Errorf("secondary_muscle_weight must be within [0, 1], got %v", d.SecondaryMuscleWeight))
	}
	if d.StabilizerMuscleWeight < 0 || d.StabilizerMuscleWeight > 1 {
		errs = multierr.Append(errs, fmt.Errorf("stabilizer_muscle_weight must be within [0, 1], got %v", d.StabilizerMuscleWeight))
	}
	if d.UniqueMusclesPerExercise < 1 {
		errs = multierr.Append(errs, fmt.Errorf("unique_muscles_per_exercise must be at least 1, got %d", d.UniqueMusclesPerExercise))
	}
	if d.MaxExercisesPerSection < 1 {
		errs = multierr.Append(errs, fmt.Errorf("max_exercises_per_section must be at least 1, got %d", d.MaxExercisesPerSection))
	}
	if d.CoreExerciseMultiplier < 1 {
		errs = multierr.Append(errs, fmt.Errorf("core_exercise_multiplier must be at least 1, got %v", d.CoreExerciseMultiplier))
	}
	return errs
}
