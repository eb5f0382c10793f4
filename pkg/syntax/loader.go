package syntax

import (
	"os"

	"github.com/pkg/errors"
	"github.com/prologkit/hornlog/pkg/hornlog"
)

// IoError wraps a failure to read a rules file. It unwraps to the
// underlying *os.PathError (or whatever os.ReadFile returned), so callers
// can still use errors.Is/errors.As against it.
type IoError struct {
	err error
}

func (e *IoError) Error() string { return e.err.Error() }
func (e *IoError) Unwrap() error { return e.err }

// LoadFile reads the UTF-8 source text at path and parses it into Rules,
// per spec.md §6's load-from-file façade. Failures are reported as either
// an *IoError (the file could not be read) or a *ParseError (the text was
// not well-formed) — no other error kind is returned.
func LoadFile(path string) (hornlog.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{err: errors.Wrapf(err, "reading rules file %s", path)}
	}
	rules, err := ParseRules(string(data))
	if err != nil {
		return nil, err
	}
	return rules, nil
}
