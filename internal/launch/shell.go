package launch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownShell is returned by DetectShell for an override it cannot map.
var ErrUnknownShell = errors.New("unknown launch shell")

// Shell defines how a command line is handed to a shell.
type Shell interface {
	Name() string
	// Args is the argv that makes the shell run line.
	Args(line string) []string
	// Quote makes s a single word for this shell.
	Quote(s string) string
}

// safeWord matches words every supported shell takes literally.
var safeWord = regexp.MustCompile(`^[A-Za-z0-9_:./@%+=,-]+$`)

// PosixShell implements Shell for sh.
type PosixShell struct{}

func (s *PosixShell) Name() string {
	return "sh"
}

func (s *PosixShell) Args(line string) []string {
	return []string{"sh", "-c", line}
}

func (s *PosixShell) Quote(word string) string {
	if safeWord.MatchString(word) {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", `'\''`) + "'"
}

// NuShell implements Shell for nushell, used on Windows.
type NuShell struct{}

func (s *NuShell) Name() string {
	return "nu"
}

func (s *NuShell) Args(line string) []string {
	return []string{"nu", "--commands", line}
}

func (s *NuShell) Quote(word string) string {
	if safeWord.MatchString(word) {
		return word
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(word) + `"`
}

// DetectShell picks the shell for goos unless override names one.
func DetectShell(goos, override string) (Shell, error) {
	switch override {
	case "sh":
		return &PosixShell{}, nil
	case "nu":
		return &NuShell{}, nil
	case "":
	default:
		return nil, fmt.Errorf("%w %q (want sh or nu)", ErrUnknownShell, override)
	}

	if goos == "windows" {
		return &NuShell{}, nil
	}
	return &PosixShell{}, nil
}
