package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds the process-level settings. JWT and Twilio credentials are read
// from the environment at the point of use.
type App struct {
	Port      string `envconfig:"PORT" default:"8080"`
	DBURL     string `envconfig:"DB_URL" required:"true"`
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

var Cfg App

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	Cfg = c
	return c, nil
}
