package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type level string

const (
	levelDebug level = "debug"
	levelInfo  level = "info"
	levelWarn  level = "warn"
)

func newLevels() *Normalizer[level] {
	return NewNormalizer(map[string]level{
		"debug":   levelDebug,
		"info":    levelInfo,
		"warn":    levelWarn,
		"WARNING": levelWarn,
	}, levelInfo)
}

func TestNormalize(t *testing.T) {
	n := newLevels()
	tests := []struct {
		name string
		in   string
		want level
	}{
		{"exact", "debug", levelDebug},
		{"case insensitive", "DEBUG", levelDebug},
		{"spaces", "  warn ", levelWarn},
		{"alias", "Warning", levelWarn},
		{"unknown falls back", "verbose", levelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	n := newLevels()

	v, err := n.Parse("WARNING")
	require.NoError(t, err)
	require.Equal(t, levelWarn, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	require.Equal(t, levelInfo, v)

	_, err = n.Parse("verbose")
	require.EqualError(t, err, `invalid value "verbose", valid options: [debug info warn warning]`)
}

func TestKeysIsACopy(t *testing.T) {
	n := newLevels()
	keys := n.Keys()
	keys[0] = "mutated"
	require.Equal(t, []string{"debug", "info", "warn", "warning"}, n.Keys())
}
