package gate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/domain/gate"
	"github.com/bracketbot/bringup/internal/domain/step"
)

func TestAuto_Decide(t *testing.T) {
	t.Parallel()

	g := gate.NewAuto()
	s := step.New("example", "example step", func(context.Context) error { return nil })

	outcome, err := g.Decide(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, step.OutcomeConfirmed, outcome)
	assert.True(t, outcome.Proceed())
}
