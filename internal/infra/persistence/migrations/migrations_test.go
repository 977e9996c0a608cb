package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", DirectionUp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn is not set")
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "sideways", "UP", "Down"} {
		t.Run(direction, func(t *testing.T) {
			err := Run("postgres://localhost/jobboard", direction)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "direction must be up or down")
		})
	}
}

func TestFiles_PairedUpAndDown(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %q", name)
		}
	}

	assert.Equal(t, ups, downs)
	assert.Contains(t, ups, "000003_create_applications")
}
