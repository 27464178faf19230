package fountain

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	nopLogger
	infos []string
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func TestParticleStatsSystem(t *testing.T) {
	log := &recordingLogger{}
	app, em := newParticleApp(t, 10*time.Millisecond, false,
		LoggingModule{Logger: log},
		StatsModule{Every: 2},
	)
	em.Emit(mgl32.Vec3{}, mgl32.Vec3{}, 1)
	em.EmitAfter(mgl32.Vec3{}, mgl32.Vec3{}, 1, 10)

	for i := 0; i < 4; i++ {
		app.Step()
	}

	stats, ok := Resource[ParticleStats](app)
	require.True(t, ok)
	assert.Equal(t, 2, stats.Reports)

	s := stats.ByName["sparks"]
	assert.Equal(t, 1, s.Live)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 2000, s.Capacity)
	assert.InDelta(t, 0.04, s.Clock, 1e-6)

	require.Len(t, log.infos, 2)
	assert.Contains(t, log.infos[1], "frame 4 sparks: live 1/2000")
}

func TestParticleStatsSystem_RecordOnly(t *testing.T) {
	log := &recordingLogger{}
	app, _ := newParticleApp(t, 10*time.Millisecond, false,
		LoggingModule{Logger: log},
		StatsModule{},
	)
	app.Step()

	stats, _ := Resource[ParticleStats](app)
	assert.Equal(t, 0, stats.Reports)
	assert.Contains(t, stats.ByName, "sparks")
	assert.Empty(t, log.infos)
}
