package cmd

import (
	"io"
	"os"

	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Services: func() (*service.Services, error) {
			return service.NewServices(service.Options{})
		},
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// handlerDeps builds the services and wraps them for the handlers.
// It reports the failure and returns false when services cannot be built.
func handlerDeps() (*cli.Deps, bool) {
	services, err := deps.Services()
	if err != nil {
		cli.Fail(deps.Stderr, "Failed to start sip", err, "Check your config file with 'sip config'")
		deps.Exit(1)
		return nil, false
	}

	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: services,
	}, true
}
