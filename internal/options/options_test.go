package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flarebyte/greet/internal/config"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, "World", c.Name)
	require.True(t, c.ShowFiglet)
	require.True(t, c.UseColor)
	require.False(t, c.HasLanguages)
	require.Equal(t, 50*time.Millisecond, c.TypewriterDelay)
}

func TestWithFile_OnlyOverridesSetFields(t *testing.T) {
	f := config.File{
		Name: "Ada", HasName: true,
		Color:             config.Toggle{Value: false, Set: true},
		Party:             config.Toggle{Value: true, Set: true},
		TypewriterDelayMs: 5, HasTypewriterDelay: true,
		Languages: []string{"french"}, HasLanguages: true,
	}
	c := Default().WithFile(f)
	require.Equal(t, "Ada", c.Name)
	require.False(t, c.UseColor)
	require.True(t, c.PartyMode)
	require.True(t, c.ShowFiglet)
	require.Equal(t, 5*time.Millisecond, c.TypewriterDelay)
	require.Equal(t, []string{"french"}, c.Languages)
	require.True(t, c.HasLanguages)
}

func TestCowsayActive(t *testing.T) {
	c := Default()
	require.False(t, c.CowsayActive())
	c.Cowsay = true
	require.True(t, c.CowsayActive())
	c.Rainbow = true
	require.False(t, c.CowsayActive())
	c.GridLayout = true
	require.True(t, c.CowsayActive())
}
