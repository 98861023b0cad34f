package credentials

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/ib-77/maybe3/internal/logging"
	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/maybe/solo"
)

const defaultFormat = "json"

// DocumentSource decodes credentials from an in-memory document.
//
// Format is any config type viper understands and defaults to json.
// When EnvPrefix is set, PREFIX_APP_NAME, PREFIX_CLIENT_ID and
// PREFIX_CLIENT_SECRET override the document.
type DocumentSource struct {
	Document  []byte
	Format    string
	EnvPrefix string
}

func (s DocumentSource) Credentials(ctx context.Context) maybe.Maybe[Credentials] {
	log := logging.FromContext(ctx).With(logging.Stringer("lookup_id", uuid.New()))

	found := s.decode(log)
	solo.DoubleTee(found,
		func(c Credentials) {
			log.Debug("credentials resolved", logging.Stringer("credentials", c))
		},
		func(reason string) {
			log.Warn("no usable credentials", logging.String("reason", reason))
		})

	return found
}

func (s DocumentSource) decode(log *logging.Logger) maybe.Maybe[Credentials] {
	if len(bytes.TrimSpace(s.Document)) == 0 && s.EnvPrefix == "" {
		return maybe.FromAbsence[Credentials](ReasonNoDocument)
	}

	v := viper.New()
	format := s.Format
	if format == "" {
		format = defaultFormat
	}
	if !slices.Contains(viper.SupportedExts, format) {
		err := Error.New("unsupported format %q", format)
		log.Warn("cannot decode credentials document", logging.Any("supported", viper.SupportedExts), logging.Error(err))
		return maybe.FromAbsence[Credentials](err.Error())
	}
	v.SetConfigType(format)

	if s.EnvPrefix != "" {
		v.SetEnvPrefix(s.EnvPrefix)
		v.AutomaticEnv()
	}

	if len(bytes.TrimSpace(s.Document)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(s.Document)); err != nil {
			err = Error.Wrap(err)
			log.Warn("cannot decode credentials document", logging.String("format", format), logging.Error(err))
			return maybe.FromAbsence[Credentials](err.Error())
		}
	}

	var missing []string
	for _, key := range []string{KeyAppName, KeyClientID, KeyClientSecret} {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return maybe.FromAbsence[Credentials]("field missing: " + strings.Join(missing, ", "))
	}

	return solo.Validate(Credentials{
		AppName:  v.GetString(KeyAppName),
		ClientID: v.GetString(KeyClientID),
		Secret:   v.GetString(KeyClientSecret),
	}, func(c Credentials) (bool, string) {
		return c.IsCorrect(), ReasonIncomplete
	})
}
