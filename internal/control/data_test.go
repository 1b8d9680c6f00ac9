package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDataFromEnvironment(t *testing.T) {
	t.Run("explicit home", func(t *testing.T) {
		t.Setenv("FLYCREATE_HOME", "/srv/flycreate/")
		env := EnvDataFromEnvironment()
		assert.Equal(t, "/srv/flycreate", env.BaseDirPath)
		assert.Equal(t, "/srv/flycreate/config.yaml", env.ConfigPath())
		assert.Equal(t, "/srv/flycreate/libs", env.Resolve("libs"))
		assert.Equal(t, "/var/libs", env.Resolve("/var/libs"))
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("FLYCREATE_HOME", "")
		t.Setenv("HOME", "/home/user")
		assert.Equal(t, "/home/user/.config/flycreate", EnvDataFromEnvironment().BaseDirPath)
	})
}
