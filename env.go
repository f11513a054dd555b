package riot

import (
	"os"
	"strconv"

	"github.com/Jerok0/riot/report"
)

// Environment variables the riot harness sets for suite binaries it
// runs. Suite binaries opt in via ConfigureFromEnv.
const (
	ReporterEnv = "RIOT_REPORTER"
	PlainEnv    = "RIOT_PLAIN"
)

// ConfigureFromEnv applies reporter selection from the environment to
// the Runner. Unset variables leave the configuration untouched.
func ConfigureFromEnv(r *Runner) error {
	if v := os.Getenv(ReporterEnv); v != "" {
		kind, err := report.ParseKind(v)
		if err != nil {
			return err
		}
		r.SetReporter(kind)
	}
	if v := os.Getenv(PlainEnv); v != "" {
		if plain, err := strconv.ParseBool(v); err == nil && plain {
			r.SetPlainOutput()
		}
	}
	return nil
}
