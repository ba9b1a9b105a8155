package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRoundTrip(t *testing.T) {
	p := NewGameProgress()
	p.CurrentLevel = 2
	p.DeathCount = 7
	p.LevelDeaths[0] = 3
	p.LevelDeaths[1] = 4
	p.LevelCompleted[0] = true
	p.LevelsCompleted = 1
	p.TotalScore = 120
	p.HealthPoints = 4
	p.CurrentLevelScore = 30

	data, err := EncodeProgress(p)
	require.NoError(t, err)
	got, err := DecodeProgress(data)
	require.NoError(t, err)

	want := *p
	want.CurrentLevelScore = 0
	assert.Equal(t, &want, got, "the in-level score is not saved")
}

func TestDecodeProgress(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantNil bool
		wantErr bool
	}{
		{"empty means no save", "", true, false},
		{"corrupt", "{not json", true, true},
		{"missing maps", `{"currentLevel":1}`, false, false},
		{"negative level", `{"currentLevel":-4}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeProgress([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.NotNil(t, got.LevelDeaths)
			assert.NotNil(t, got.LevelCompleted)
			assert.GreaterOrEqual(t, got.CurrentLevel, 0)
		})
	}
}

func TestEncodeNilProgress(t *testing.T) {
	_, err := EncodeProgress(nil)
	assert.Error(t, err)
}

func TestNilPersistenceIsNoop(t *testing.T) {
	var ps *Persistence
	p, err := ps.LoadProgress()
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, ps.HasProgress())
	assert.NoError(t, ps.SaveProgress(NewGameProgress()))
	assert.NoError(t, ps.ClearProgress())
	s, err := ps.LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, s)
}
