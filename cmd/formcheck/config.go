package main

// appConfig is read from the environment (and ./.env when present). Command
// line flags override the matching fields.
type appConfig struct {
	Env              string `env:"FORMCHECK_ENV" envDefault:"production"`
	LogLevel         string `env:"FORMCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat        string `env:"FORMCHECK_LOG_FORMAT"`
	Lang             string `env:"FORMCHECK_LANG" envDefault:"en"`
	Strict           bool   `env:"FORMCHECK_STRICT"`
	PhoneRegion      string `env:"FORMCHECK_PHONE_REGION"`
	Messages         string `env:"FORMCHECK_MESSAGES"`
	PatternMaxLength int    `env:"FORMCHECK_PATTERN_MAX_LENGTH" envDefault:"512"`
}
