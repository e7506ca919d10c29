package loader_test

import (
	"testing"

	"morphood/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestLoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Loads Enabled Skips Disabled", func(t *testing.T) {
		mgr := loader.NewManager(zap.NewNop())
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("First Failure Aborts", func(t *testing.T) {
		mgr := loader.NewManager(zap.NewNop())
		bad := &stubFeature{name: "bad", enabled: true, err: assert.AnError}
		after := &stubFeature{name: "after", enabled: true}
		mgr.Register(bad)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "bad")
		assert.False(t, after.loaded)
	})
}
