package main

// Config is read from the environment and from ./.env.
type Config struct {
	Env          string `env:"AUTHINPUT_ENV" envDefault:"development"`
	LogLevel     string `env:"AUTHINPUT_LOG_LEVEL"`
	Locale       string `env:"AUTHINPUT_LOCALE" envDefault:"en"`
	Translations string `env:"AUTHINPUT_TRANSLATIONS"`
	Connection   string `env:"AUTHINPUT_CONNECTION"`
}
