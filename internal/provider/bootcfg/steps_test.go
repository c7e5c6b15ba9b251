package bootcfg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/ports"
	"github.com/bracketbot/bringup/internal/provider/bootcfg"
	"github.com/bracketbot/bringup/internal/testutil/mocks"
)

const configPath = "/boot/firmware/config.txt"

func allInterfaces() bootcfg.Options {
	return bootcfg.Options{ConfigPath: configPath, I2C: true, SPI: true, UART: true}
}

func TestStep_Guard(t *testing.T) {
	t.Parallel()

	t.Run("absent block", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddFile(configPath, []byte("arm_64bit=1\n"))

		s := bootcfg.NewProvider(mocks.NewCommandRunner(), fs).Step(allInterfaces())
		applied, err := s.Guard()(context.Background())
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("block present at current version", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewFileSystem()
		fs.AddFile(configPath, []byte(
			"arm_64bit=1\n\n# >>> bringup boot-interfaces v1 >>>\n"+
				"dtparam=i2c_arm=on\ndtparam=spi=on\nenable_uart=1\ndtoverlay=disable-bt\n"+
				"# <<< bringup boot-interfaces <<<\n"))

		s := bootcfg.NewProvider(mocks.NewCommandRunner(), fs).Step(allInterfaces())
		applied, err := s.Guard()(context.Background())
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		t.Parallel()

		s := bootcfg.NewProvider(mocks.NewCommandRunner(), mocks.NewFileSystem()).Step(allInterfaces())
		_, err := s.Guard()(context.Background())
		assert.Error(t, err)
	})
}

func TestStep_Action(t *testing.T) {
	t.Parallel()

	t.Run("merges the overlay block and installs", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewCommandRunner()
		runner.AddResult("sudo",
			[]string{"install", "-m", "0755", "/tmp/bringup-config.txt", configPath},
			ports.CommandResult{ExitCode: 0})
		fs := mocks.NewFileSystem()
		fs.AddFile(configPath, []byte("arm_64bit=1\n"))

		s := bootcfg.NewProvider(runner, fs).Step(allInterfaces())
		require.NoError(t, s.Action()(context.Background()))

		assert.True(t, runner.CalledWith("sudo", "install", "-m", "0755", "/tmp/bringup-config.txt", configPath))
	})

	t.Run("no install when the block is already current", func(t *testing.T) {
		t.Parallel()

		current := "# >>> bringup boot-interfaces v1 >>>\n" +
			"dtparam=i2c_arm=on\ndtparam=spi=on\nenable_uart=1\ndtoverlay=disable-bt\n" +
			"# <<< bringup boot-interfaces <<<\n"

		runner := mocks.NewCommandRunner()
		fs := mocks.NewFileSystem()
		fs.AddFile(configPath, []byte(current))

		s := bootcfg.NewProvider(runner, fs).Step(allInterfaces())
		require.NoError(t, s.Action()(context.Background()))
		assert.Empty(t, runner.Calls())
	})

	t.Run("missing config file is a precondition error", func(t *testing.T) {
		t.Parallel()

		s := bootcfg.NewProvider(mocks.NewCommandRunner(), mocks.NewFileSystem()).Step(allInterfaces())
		err := s.Action()(context.Background())

		var preErr *step.PreconditionError
		require.ErrorAs(t, err, &preErr)
		assert.Equal(t, configPath, preErr.Missing)
	})
}
