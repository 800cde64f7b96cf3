package main

import (
	"github.com/storefront-labs/checkout-svc/internal/app"
	"github.com/storefront-labs/checkout-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
