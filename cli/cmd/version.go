package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/ardnew/oden/pkg"
)

// Version prints the program version.
type Version struct {
	Check string `help:"Fail unless the version satisfies CONSTRAINT (e.g. '^0.3')." placeholder:"CONSTRAINT"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	fmt.Fprintln(outputFrom(ctx), pkg.Name, pkg.Version())

	if v.Check == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(v.Check)
	if err != nil {
		return ErrConstraint.
			With(slog.String("constraint", v.Check)).
			Wrap(err)
	}

	running, err := semver.NewVersion(pkg.Version())
	if err != nil {
		return ErrVersion.Wrap(err)
	}

	if ok, errs := constraint.Validate(running); !ok {
		return ErrVersion.
			With(
				slog.String("constraint", v.Check),
				slog.String("version", running.String()),
			).
			Wrap(errors.Join(errs...))
	}

	return nil
}
