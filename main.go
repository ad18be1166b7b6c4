package main

import (
	"os"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"usblcd/pkg/album"
	"usblcd/pkg/device/inch5"
	"usblcd/pkg/proto"
)

func main() {
	if len(os.Args) < 2 {
		panic("usage: usblcd <image>")
	}

	logger, _ := zap.NewDevelopment()

	dev := inch5.New(proto.NewSerial(""), logger)
	if err := dev.Connect(); err != nil {
		panic(err)
	}
	defer dev.Close()

	img, err := imaging.Open(os.Args[1])
	if err != nil {
		panic(err)
	}

	img = imaging.Fill(img, album.PanelWidth, album.PanelHeight, imaging.Center, imaging.Lanczos)
	if err := dev.ShowImage(img); err != nil {
		panic(err)
	}
}
