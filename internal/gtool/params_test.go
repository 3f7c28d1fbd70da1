package gtool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsPairs_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	p := NewParams()
	p.SetFloat("rad", 10)
	p.SetInt("evclass", 2)
	p.SetString("infile", "@crab.list")
	p.SetString("tmin", "INDEF")
	p.SetFloat("binsz", 0.025)
	p.SetInt("convtype", -1)
	p.SetFlag("roicut", true)
	p.SetFlag("emapbnds", false)

	pairs, err := p.Pairs()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rad=10",
		"evclass=2",
		"infile=@crab.list",
		"tmin=INDEF",
		"binsz=0.025",
		"convtype=-1",
		"roicut=yes",
		"emapbnds=no",
	}, pairs)
}

func TestParamsSet_OverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	p := NewParams()
	p.SetString("a", "1")
	p.SetString("b", "2")
	p.SetString("a", "3")

	pairs, err := p.Pairs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a=3", "b=2"}, pairs)
	assert.Equal(t, 2, p.Len())
}

func TestAppCommand(t *testing.T) {
	t.Parallel()

	t.Run("bare tool name", func(t *testing.T) {
		app := NewApp("gtselect")
		app.Params.SetFloat("rad", 10)

		argv, err := app.Command("")
		require.NoError(t, err)
		assert.Equal(t, []string{"gtselect", "rad=10"}, argv)
	})

	t.Run("bin dir pins the installation", func(t *testing.T) {
		app := NewApp("gtselect")

		argv, err := app.Command("/opt/sciencetools/bin")
		require.NoError(t, err)
		assert.Equal(t, []string{"/opt/sciencetools/bin/gtselect"}, argv)
	})
}
