package main

import (
	"bytes"
	"image"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"usblcd/pkg/album"
	"usblcd/pkg/device/inch5"
	"usblcd/pkg/device/remote"
	"usblcd/pkg/device/virtual"
	"usblcd/pkg/proto"
)

var serial = flag.String("serial", "", "serial name or remote addr, empty for autodetect")
var url = flag.String("url", "", "fetch the image from a url")
var cache = flag.String("cache", "", "download cache dir")
var update = flag.Bool("update", false, "send a region update instead of a full frame")
var posX = flag.Uint16("x", 0, "region x")
var posY = flag.Uint16("y", 0, "region y")
var fill = flag.Bool("fill", false, "fill the image to the panel size")
var lenient = flag.Bool("lenient", false, "log acknowledgement mismatches instead of failing")
var dry = flag.Bool("dry", false, "use the virtual device")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

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
		var opts []inch5.Option
		if *lenient {
			opts = append(opts, inch5.WithPolicy(inch5.Lenient))
		}
		dev = inch5.New(proto.NewSerial(*serial), logger, opts...)
	}

	if devErr != nil {
		log.Fatal(devErr)
	}

	img, err := loadImage(logger)
	if err != nil {
		log.Fatal(err)
	}

	if *fill {
		img = imaging.Fill(img, album.PanelWidth, album.PanelHeight, imaging.Center, imaging.Lanczos)
	}

	if err := dev.Connect(); err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	if *update {
		err = dev.UpdateRegion(*posX, *posY, img)
	} else {
		err = dev.ShowImage(img)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadImage(logger *zap.Logger) (image.Image, error) {
	if *url != "" {
		dl, err := album.NewDownloader(*cache, logger)
		if err != nil {
			return nil, err
		}
		bs, err := dl.Get(*url)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(bs))
		return img, err
	}

	if flag.NArg() < 1 {
		log.Fatal("image path or --url required")
	}
	return imaging.Open(flag.Arg(0))
}
