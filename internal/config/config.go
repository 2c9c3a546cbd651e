package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time resolves the business timezone
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  OpenHour, CloseHour and MinSessionMin are
// the club-wide scheduling constants consumed by the availability view;
// Location is the single fixed business timezone in which all calendar
// days and "now" are interpreted, independent of viewer location.
type Config struct {
	Env           string         // application environment (e.g. "dev", "prod")
	Port          string         // HTTP port to listen on
	DBUser        string         // database username
	DBPass        string         // database password (optional)
	DBHost        string         // database host address
	DBPort        string         // database port number
	DBName        string         // database name
	JWTSecret     string         // secret used to verify externally issued JWTs
	OpenHour      int            // first bookable hour of the day
	CloseHour     int            // closing hour of the day
	MinSessionMin int            // shortest session length, drives the default-date choice
	Location      *time.Location // business timezone (Europe/Paris unless overridden)
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The scheduling
// constants carry defaults so a bare environment still yields a working
// 09:00-22:00 Paris calendar; an inverted opening window is rejected at
// startup because it would poison every availability computation.
func Load() Config {
	cfg := Config{
		Env:           must("APP_ENV"),      // environment (dev/test/prod)
		Port:          must("APP_PORT"),     // port to bind the HTTP server
		DBUser:        must("DB_USER"),      // database user
		DBPass:        os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:        must("DB_HOST"),      // database host
		DBPort:        must("DB_PORT"),      // database port
		DBName:        must("DB_NAME"),      // database name
		JWTSecret:     must("JWT_SECRET"),   // secret shared with the auth provider
		OpenHour:      intDefault("OPEN_HOUR", 9),
		CloseHour:     intDefault("CLOSE_HOUR", 22),
		MinSessionMin: intDefault("MIN_SESSION_MINUTES", 60),
	}
	if cfg.CloseHour <= cfg.OpenHour {
		log.Fatalf("invalid business hours: OPEN_HOUR=%d CLOSE_HOUR=%d", cfg.OpenHour, cfg.CloseHour)
	}

	tzName := os.Getenv("BUSINESS_TZ")
	if tzName == "" {
		tzName = "Europe/Paris"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("invalid BUSINESS_TZ %q: %v", tzName, err)
	}
	cfg.Location = loc
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intDefault reads an optional integer environment variable, falling back
// to def when unset.  A value that is present but unparsable is a fatal
// configuration error rather than a silent fallback.
func intDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
