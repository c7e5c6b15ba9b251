package groups_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
	"github.com/bracketbot/bringup/internal/provider/groups"
	"github.com/bracketbot/bringup/internal/testutil/mocks"
)

func TestStep_Guard(t *testing.T) {
	t.Parallel()

	want := []string{"i2c", "dialout"}

	tests := []struct {
		name    string
		current string
		applied bool
	}{
		{name: "member of all", current: "pi adm i2c dialout gpio", applied: true},
		{name: "missing one", current: "pi adm i2c", applied: false},
		{name: "member of none", current: "pi", applied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := mocks.NewCommandRunner()
			runner.AddResult("id", []string{"-nG", "pi"},
				ports.CommandResult{ExitCode: 0, Stdout: tt.current + "\n"})

			s := groups.NewProvider(runner).Step("pi", want)
			applied, err := s.Guard()(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.applied, applied)
		})
	}

	t.Run("unknown user is an error", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewCommandRunner()
		runner.AddResult("id", []string{"-nG", "ghost"},
			ports.CommandResult{ExitCode: 1, Stderr: "id: 'ghost': no such user"})

		s := groups.NewProvider(runner).Step("ghost", want)
		_, err := s.Guard()(context.Background())
		assert.Error(t, err)
	})
}

func TestStep_Action(t *testing.T) {
	t.Parallel()

	t.Run("adds all groups in one usermod call", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewCommandRunner()
		runner.AddResult("sudo", []string{"usermod", "-aG", "i2c,dialout", "pi"},
			ports.CommandResult{ExitCode: 0})

		s := groups.NewProvider(runner).Step("pi", []string{"i2c", "dialout"})
		require.NoError(t, s.Action()(context.Background()))
		assert.True(t, runner.CalledWith("sudo", "usermod", "-aG", "i2c,dialout", "pi"))
	})

	t.Run("usermod failure carries its exit code", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewCommandRunner()
		runner.AddResult("sudo", []string{"usermod", "-aG", "i2c", "pi"},
			ports.CommandResult{ExitCode: 6, Stderr: "usermod: group 'i2c' does not exist"})

		s := groups.NewProvider(runner).Step("pi", []string{"i2c"})
		err := s.Action()(context.Background())

		var actionErr *step.ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, 6, actionErr.ExitCode)
	})
}
