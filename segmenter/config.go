package segmenter

// Config holds the duration limits driving segmentation, all in seconds.
// Callers are expected to keep hard_min <= target_min <= target_max <=
// hard_max; the engine does not enforce the ordering.
type Config struct {
	TargetMin float64 `json:"target_min" yaml:"target_min"`
	TargetMax float64 `json:"target_max" yaml:"target_max"`
	HardMax   float64 `json:"hard_max" yaml:"hard_max"`
	HardMin   float64 `json:"hard_min" yaml:"hard_min"`
	GapFiller float64 `json:"gap_filler" yaml:"gap_filler"`
}

// DefaultConfig returns the stock pacing limits.
func DefaultConfig() Config {
	return Config{
		TargetMin: 1.5,
		TargetMax: 3.0,
		HardMax:   4.0,
		HardMin:   0.8,
		GapFiller: 0.3,
	}
}

// Override is a partial config as supplied over the API or CLI. Nil fields
// fall back to the defaults.
type Override struct {
	TargetMin *float64 `json:"target_min"`
	TargetMax *float64 `json:"target_max"`
	HardMax   *float64 `json:"hard_max"`
	HardMin   *float64 `json:"hard_min"`
	GapFiller *float64 `json:"gap_filler"`
}

// ResolveConfig merges an optional override onto the defaults.
func ResolveConfig(o *Override) Config {
	cfg := DefaultConfig()
	if o == nil {
		return cfg
	}
	if o.TargetMin != nil {
		cfg.TargetMin = *o.TargetMin
	}
	if o.TargetMax != nil {
		cfg.TargetMax = *o.TargetMax
	}
	if o.HardMax != nil {
		cfg.HardMax = *o.HardMax
	}
	if o.HardMin != nil {
		cfg.HardMin = *o.HardMin
	}
	if o.GapFiller != nil {
		cfg.GapFiller = *o.GapFiller
	}
	return cfg
}
