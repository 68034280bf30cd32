package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	for v := 0; v <= 5; v++ {
		q, err := ParseQuality(v)
		require.NoError(t, err)
		assert.Equal(t, Quality(v), q)
	}

	for _, v := range []int{-1, 6, 100} {
		_, err := ParseQuality(v)
		assert.ErrorIs(t, err, ErrInvalidQuality)
	}
}

func TestQualityPassed(t *testing.T) {
	assert.False(t, QualityAlmost.Passed())
	assert.True(t, QualityHard.Passed())
	assert.True(t, QualityPerfect.Passed())
}

func TestQualityString(t *testing.T) {
	assert.Equal(t, "good", QualityGood.String())
	assert.Equal(t, "Quality(9)", Quality(9).String())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"zero minimum ease", func(p *Params) { p.MinimumEase = 0 }},
		{"initial below minimum", func(p *Params) { p.InitialEase = 1.1 }},
		{"pass threshold out of range", func(p *Params) { p.PassThreshold = 7 }},
		{"zero first interval", func(p *Params) { p.FirstInterval = 0 }},
		{"second shorter than first", func(p *Params) { p.FirstInterval = 3; p.SecondInterval = 2 }},
		{"negative cap", func(p *Params) { p.MaximumInterval = -1 }},
		{"cap below second interval", func(p *Params) { p.MaximumInterval = 4 }},
		{"cap above interval limit", func(p *Params) { p.MaximumInterval = IntervalLimit + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.modify(&p)
			_, err := NewScheduler(p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}
