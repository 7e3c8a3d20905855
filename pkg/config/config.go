package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	PresentationStyled = "styled"
	PresentationPlain  = "plain"

	defaultPort         = "3000"
	defaultProbeTimeout = 10 * time.Second
)

// Config holds everything the server reads from the environment.
type Config struct {
	Host         string
	Port         string
	ProbeTimeout time.Duration
	OpenBrowser  bool
	Presentation string
	LogLevel     string
	CityDBPath   string
	ASNDBPath    string
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// BrowserURL is the root URL opened by the browser launch hook.
func (c Config) BrowserURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + host + ":" + c.Port + "/"
}

// LoadDotEnv seeds the process environment from a .env file. Variables already
// set are kept.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// LogLevel is the LOG_LEVEL setting, lowercased, defaulting to info.
func LogLevel() string {
	if lvl := strings.TrimSpace(os.Getenv("LOG_LEVEL")); lvl != "" {
		return strings.ToLower(lvl)
	}
	return "info"
}

// Load reads the configuration from the environment, falling back to defaults
// for anything unset or malformed.
func Load() Config {
	cfg := Config{
		Host:         strings.TrimSpace(os.Getenv("HOST")),
		Port:         defaultPort,
		ProbeTimeout: defaultProbeTimeout,
		OpenBrowser:  true,
		Presentation: PresentationStyled,
		LogLevel:     LogLevel(),
		CityDBPath:   os.Getenv("MMDB_CITY_PATH"),
		ASNDBPath:    os.Getenv("MMDB_ASN_PATH"),
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
			logrus.WithField("port", port).Warn("Invalid PORT, using default")
		} else {
			cfg.Port = port
		}
	}

	if raw := strings.TrimSpace(os.Getenv("PROBE_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			logrus.WithField("probe_timeout", raw).Warn("Invalid PROBE_TIMEOUT, using default")
		} else {
			cfg.ProbeTimeout = d
		}
	}

	if raw := strings.TrimSpace(os.Getenv("OPEN_BROWSER")); raw != "" {
		if b, err := strconv.ParseBool(raw); err != nil {
			logrus.WithField("open_browser", raw).Warn("Invalid OPEN_BROWSER, using default")
		} else {
			cfg.OpenBrowser = b
		}
	}

	switch p := strings.ToLower(strings.TrimSpace(os.Getenv("PRESENTATION"))); p {
	case "":
	case PresentationStyled, PresentationPlain:
		cfg.Presentation = p
	default:
		logrus.WithField("presentation", p).Warn("Unknown PRESENTATION, using styled")
	}

	return cfg
}
