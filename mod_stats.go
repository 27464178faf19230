package fountain

import (
	"github.com/gekko3d/fountain/fx/particle"
)

// ParticleStats keeps the last stats read from every emitter.
type ParticleStats struct {
	Every   uint64
	ByName  map[string]particle.Stats
	Reports int
}

type StatsModule struct {
	// Every logs once per this many frames. Zero only records.
	Every uint64
}

func (m StatsModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&ParticleStats{Every: m.Every, ByName: make(map[string]particle.Stats)})
	app.UseSystem(
		System(ParticleStatsSystem).
			InStage(PostRender),
	)
}

func ParticleStatsSystem(t *Time, emitters *Emitters, stats *ParticleStats, list *DrawList, log Logger) {
	emitters.Each(func(name string, em *particle.Emitter) {
		stats.ByName[name] = em.Stats()
	})

	if stats.Every == 0 || t.Frame%stats.Every != 0 {
		return
	}
	stats.Reports++
	emitters.Each(func(name string, _ *particle.Emitter) {
		s := stats.ByName[name]
		log.Infof("frame %d %s: live %d/%d in range %d pending %d evicted %d clock %.2fs",
			t.Frame, name, s.Live, s.Capacity, s.InRange, s.Pending, s.Evicted, s.Clock)
	})
	log.Debugf("frame %d: %d instances drawn, %d culled", t.Frame, len(list.Instances), list.Culled)
}
