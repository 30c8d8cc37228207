package cli

import (
	"io"
	"os"

	"github.com/xolan/sip/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	Services *service.Services
}

// NewDeps creates Deps writing to the process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
	}
}

// Fail prints an error with optional details and hint, then exits with 1.
func (d *Deps) Fail(msg string, err error, hint string) {
	Fail(d.Stderr, msg, err, hint)
	d.Exit(1)
}
