package main

import (
	"context"
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"usblcd/pkg/device/inch5"
	"usblcd/pkg/device/remote"
	"usblcd/pkg/proto"
)

var serial = flag.String("serial", "", "serial name, empty for autodetect")
var listen = flag.String("listen", ":9123", "listen addr")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*proto.Serial, *http.Server, *zap.Logger) {
				logger, _ := zap.NewDevelopment()
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen},
					logger
			},
			inch5.New,
		),
		fx.Invoke(
			func(dev proto.Control, lc fx.Lifecycle) error {
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error { return dev.Close() },
				})
				return dev.Connect()
			},
			remote.Proxy,
		),
	).Run()
}
