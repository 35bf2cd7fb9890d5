package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"leave-tracking" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User               string `default:"" env:"SMTP_USER"`
		Password           string `default:"" env:"SMTP_PASSWORD"`
		Host               string `default:"" env:"SMTP_HOST"`
		Port               string `default:"" env:"SMTP_PORT"`
		TLSEnabled         *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailSendReset     string `default:"" env:"EMAIL_SEND_RESET"`
		DomainForResetLink string `default:"http://localhost:8000" env:"DOMAIN_FOR_RESET_LINK"`
	}
	Leave struct {
		// разрешить админу менять решение по уже рассмотренной заявке
		AllowRedecide *bool `default:"true" env:"LEAVE_ALLOW_REDECIDE"`
	}
	Admin struct {
		UserName string `default:"admin" env:"ADMIN_USER_NAME"`
		Email    string `default:"admin@example.com" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
