package main

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/10aParikh/visabridge/gateway"
	"github.com/10aParikh/visabridge/tools"
	"github.com/10aParikh/visabridge/visa"
)

func visaConfigFromViper() visa.Config {
	return visa.Config{
		UserID:      viper.GetString("visa.user_id"),
		Password:    viper.GetString("visa.password"),
		CertPath:    viper.GetString("visa.cert_path"),
		KeyPath:     viper.GetString("visa.key_path"),
		Environment: viper.GetString("visa.environment"),
	}
}

func registryFromCatalog() *tools.Registry {
	return tools.NewRegistry(tools.Catalog(nil)...)
}

func dispatcherFromViper(logger *slog.Logger) (*gateway.Dispatcher, *tools.Registry) {
	registry := registryFromCatalog()
	factory := visa.NewFactory(visaConfigFromViper())
	return gateway.New(factory, registry, logger), registry
}
