package entities

// Base values at difficulty 0, in ticks at 60 TPS and pixels per tick.
const (
	GhostBaseSpeed = 1.5

	baseSpawnDelayTicks = 300 // 5s
	baseRecomputeTicks  = 120 // 2s between scheduled path refreshes
	baseVulnerableTicks = 480 // 8s
	baseScatterTicks    = 600 // 10s
	baseChaseTicks      = 900 // 15s

	minSpawnDelayTicks = 60
	minRecomputeTicks  = 12
	minVulnerableTicks = 60
	minScatterTicks    = 120
	maxChaseTicks      = 2400
)

// Tuning holds the per-level adversary numbers derived from a map's
// difficulty. It is computed once when a level starts and never
// changes mid-level.
type Tuning struct {
	Multiplier      float64
	Speed           float64
	SpawnDelayTicks int
	RecomputeTicks  int
	VulnerableTicks int
	ScatterTicks    int
	ChaseTicks      int
}

// TuningFor maps a difficulty level (0-200) onto concrete speeds and
// timers. The multiplier lands in [1,3]: faster ghosts, shorter spawn
// delays, more frequent path refreshes, briefer vulnerability, longer
// chases.
func TuningFor(difficulty int) Tuning {
	factor := float64(difficulty) / 100.0
	if factor > 2.0 {
		factor = 2.0
	}
	if factor < 0 {
		factor = 0
	}
	mult := 1.0 + factor

	t := Tuning{
		Multiplier:      mult,
		Speed:           GhostBaseSpeed * mult,
		SpawnDelayTicks: int(baseSpawnDelayTicks / mult),
		RecomputeTicks:  int(baseRecomputeTicks * (1.0 - 0.4*factor)),
		VulnerableTicks: int(baseVulnerableTicks * (1.0 - (mult-1.0)*0.85)),
		ScatterTicks:    int(baseScatterTicks * (1.0 - 0.45*factor)),
		ChaseTicks:      int(baseChaseTicks * (1.0 + 0.8*factor)),
	}
	if t.SpawnDelayTicks < minSpawnDelayTicks {
		t.SpawnDelayTicks = minSpawnDelayTicks
	}
	if t.RecomputeTicks < minRecomputeTicks {
		t.RecomputeTicks = minRecomputeTicks
	}
	if t.VulnerableTicks < minVulnerableTicks {
		t.VulnerableTicks = minVulnerableTicks
	}
	if t.ScatterTicks < minScatterTicks {
		t.ScatterTicks = minScatterTicks
	}
	if t.ChaseTicks > maxChaseTicks {
		t.ChaseTicks = maxChaseTicks
	}
	return t
}
