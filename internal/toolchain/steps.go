package toolchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golemcloud/golem-examples/internal/model"
)

// ErrNotImplemented is returned by StepsFor for languages without a known
// build procedure.
var ErrNotImplemented = errors.New("build not implemented")

// Step is one external command run inside the component directory.
type Step struct {
	Command string
	Args    []string
}

// String returns the command line.
func (s Step) String() string {
	return strings.TrimSpace(s.Command + " " + strings.Join(s.Args, " "))
}

// StepsFor returns the build procedure for a generated component of lang.
func StepsFor(lang model.GuestLanguage) ([]Step, error) {
	switch lang {
	case model.Go, model.Python:
		return []Step{{Command: "make", Args: []string{"build"}}}, nil
	case model.TypeScript, model.JavaScript:
		return []Step{
			{Command: "npm", Args: []string{"install"}},
			{Command: "npm", Args: []string{"run", "componentize"}},
		}, nil
	case model.Rust:
		return []Step{{Command: "cargo", Args: []string{"component", "build"}}}, nil
	default:
		return nil, fmt.Errorf("%w for %s", ErrNotImplemented, lang.Name())
	}
}
