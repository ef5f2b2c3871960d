package domain

import (
	"github.com/cockroachdb/errors"
)

// Error classes surfaced by the selection engine. Match with errors.Is.
var (
	// ErrConfiguration marks malformed or missing project/expansion configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrService marks failures talking to the relevance service.
	ErrService = errors.New("relevance service error")
)

func configurationErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

func wrapConfiguration(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrConfiguration)
}

func wrapService(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrService)
}
