package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/oden/log"
	"github.com/ardnew/oden/pkg"
)

// versionKey is the configuration key recording the version that wrote it.
const versionKey = "version"

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files.
//
// Each top-level key names a flag. Keys may use underscores in place of
// the hyphens of flag names, so log_level and log-level are equivalent.
// Scalars are passed to kong as text and sequences are joined with commas.
// A file that does not parse contributes nothing.
//
//	version: 0.3.0
//	log-level: debug
//	log_pretty: false
//	include: [parts, vendor/parts]
//
// Command-line flags override configured values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).DecodeContext(ctx, &doc); err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring configuration",
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		if v, ok := doc[versionKey]; ok {
			checkVersion(ctx, fmt.Sprint(v))
			delete(doc, versionKey)
		}

		cfg := make(config, len(doc))
		for key, value := range doc {
			cfg[key] = flagText(value)
		}

		return cfg, nil
	}
}

// checkVersion warns when a configuration was written by a version that is
// not compatible with the running one.
func checkVersion(ctx context.Context, version string) {
	running, err := semver.NewVersion(pkg.Version())
	if err != nil {
		return
	}

	want, err := semver.NewConstraint(
		fmt.Sprintf("^%d.%d", running.Major(), running.Minor()),
	)
	if err != nil {
		return
	}

	got, err := semver.NewVersion(version)
	if err == nil && want.Check(got) {
		return
	}

	log.WarnContext(ctx, "configuration version mismatch",
		slog.String("config", version),
		slog.String("running", running.String()),
	)
}

// flagText converts a decoded YAML value into the text kong expects.
func flagText(v any) any {
	switch v := v.(type) {
	case nil, bool, string:
		return v
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(flagText(item))
		}

		return strings.Join(items, ",")
	default:
		return fmt.Sprint(v)
	}
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	if v, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return v, nil
	}

	return nil, nil
}
