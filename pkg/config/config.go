package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"bistroBlissDB"`
	// JWT
	JWTSecret    string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	// Payment provider
	OmisePublicKey string `envconfig:"OMISE_PUBLIC_KEY" required:"true"`
	OmiseSecretKey string `envconfig:"OMISE_SECRET_KEY" required:"true"`
	// Events (optional; empty URL disables publishing)
	RabbitURL       string `envconfig:"RABBIT_URL" default:""`
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"payment.exchange"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":5300"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
