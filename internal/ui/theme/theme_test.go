package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownThemes(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s.Palette.Primary, name)
	}
	assert.Equal(t, []string{"blue", "green", "orange", "pink", "purple"}, Names())
}

func TestNew_EmptyIsDefault(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, Default().Palette, s.Palette)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("rainbow")
	assert.Error(t, err)
}
