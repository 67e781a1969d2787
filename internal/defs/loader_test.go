package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	lib, err := Load("")
	require.NoError(t, err)

	player, err := lib.PlayerTank()
	require.NoError(t, err)
	assert.Equal(t, "player", player.ID)

	grunt, err := lib.Tank("grunt")
	require.NoError(t, err)
	assert.Equal(t, 200.0, grunt.Speed)
	assert.Equal(t, 40.0, grunt.RotationSpeedDeg)
	assert.Equal(t, 30.0, grunt.TurretRotationSpeedDeg)
	assert.Equal(t, 1.5, grunt.AttackDelay)
	assert.Equal(t, 800.0, grunt.BulletSpeed)
	assert.Equal(t, 2, grunt.BulletDamage)
	assert.Equal(t, uint8(0x8c), grunt.Color.R)
	assert.NotEmpty(t, lib.Level.Waves)

	_, err = lib.Tank("nope")
	assert.ErrorIs(t, err, ErrUnknownTank)
}

const minimalDefs = `
player: p
tanks:
  p: {hp: 3, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
  e: {hp: 2, max_range: 100, ideal_range: 50, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}, color: "#ff000080"}
level:
  player: {x: 1, y: 2}
  waves:
    - spawns:
        - {tank: e, x: 5, y: 6, rotation: 90}
`

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(minimalDefs))
	require.NoError(t, err)
	require.Len(t, lib.Level.Waves, 1)
	spawn := lib.Level.Waves[0].Spawns[0]
	assert.Equal(t, "e", spawn.Tank)
	assert.Equal(t, 90.0, spawn.Rotation)
	assert.Equal(t, uint8(0x80), lib.Tanks["e"].Color.A)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown_spawn_tank",
			doc: `
player: p
tanks:
  p: {hp: 3, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
level:
  waves:
    - spawns: [{tank: ghost}]
`,
			want: ErrUnknownTank,
		},
		{
			name: "no_waves",
			doc: `
player: p
tanks:
  p: {hp: 3, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
`,
			want: ErrNoLevel,
		},
		{
			name: "bad_ranges",
			doc: `
player: p
tanks:
  p: {hp: 3, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
  e: {hp: 3, max_range: 10, ideal_range: 50, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
level:
  waves:
    - spawns: [{tank: e}]
`,
			want: ErrInvalidDefinition,
		},
		{
			name: "zero_hp",
			doc: `
player: p
tanks:
  p: {hp: 0, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
level:
  waves:
    - spawns: [{tank: p}]
`,
			want: ErrInvalidDefinition,
		},
		{
			name: "empty_spawn",
			doc: `
player: p
tanks:
  p: {hp: 1, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}}
level:
  waves:
    - spawns: [{x: 1}]
`,
			want: ErrInvalidDefinition,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseBadColor(t *testing.T) {
	doc := `
player: p
tanks:
  p: {hp: 1, attack_delay: 1, hurt_duration: 0.5, body: {length: 10, width: 10}, color: "#zz0000"}
`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalDefs), 0o644))

	lib, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, lib.Tanks, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
