package postgres

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/aqualab-backend/config"
)

// DSN builds a lib/pq keyword/value connection string. Values are quoted
// so passwords with spaces survive.
func DSN(cfg *config.DatabaseConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quote(cfg.Host), cfg.Port, quote(cfg.User), quote(cfg.Password), quote(cfg.Name), sslMode,
	)
}

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quote(v string) string {
	if v == "" {
		return "''"
	}
	for _, r := range v {
		if r == ' ' || r == '\'' || r == '\\' {
			return "'" + escaper.Replace(v) + "'"
		}
	}
	return v
}
