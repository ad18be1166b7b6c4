package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"usblcd/pkg/album"
	"usblcd/pkg/device/inch5"
	"usblcd/pkg/device/remote"
	"usblcd/pkg/device/virtual"
	"usblcd/pkg/mixer"
	"usblcd/pkg/proto"
)

var serial = flag.String("serial", "", "serial name or remote addr, empty for autodetect")
var dir = flag.String("dir", ".", "image dir")
var interval = flag.String("interval", "5m", "draw interval")
var shuffle = flag.Bool("shuffle", false, "shuffle the album")
var effect = flag.Bool("effect", false, "draw with block update effects")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var dry = flag.Bool("dry", false, "use the virtual device")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	wait, err := time.ParseDuration(*interval)
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}

	var dev proto.Control
	var devErr error

	switch {
	case *dry:
		dev = virtual.Mock(logger)
	case strings.Contains(*serial, ":"):
		dev, devErr = remote.New(*serial)
	default:
		dev = inch5.New(proto.NewSerial(*serial), logger)
	}

	if devErr != nil {
		log.Fatal(devErr)
	}

	if err := dev.Connect(); err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	var albumOpts []album.Option
	if *shuffle {
		albumOpts = append(albumOpts, album.WithShuffle())
	}

	a, err := album.NewAlbum(*dir, albumOpts...)
	if err != nil {
		log.Fatal(err)
	}

	var mixerOpts []mixer.Option
	if *effect {
		mixerOpts = append(mixerOpts, mixer.WithEffect(mixer.EffectBlock()))
	}

	drawer := album.NewDrawer(mixer.NewDrawer(dev, mixerOpts...), a)

	if *tgToken != "" {
		bot, err := album.NewBot(*tgToken, drawer, a, logger)
		if err != nil {
			log.Fatal(err)
		}
		bot.Start()
		defer bot.Stop()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(wait)
	defer tick.Stop()

	for {
		if err := drawer.Drawing(); err != nil {
			logger.With(zap.Error(err)).Warn("drawing failed")
		}

		select {
		case <-stop:
			return
		case <-tick.C:
		}
	}
}
