package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"usblcd/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Connect() error {
	return c.rpc.Call("Service.Command", "connect", nil)
}

func (c *Client) Restart() error {
	return c.rpc.Call("Service.Command", "restart", nil)
}

func (c *Client) Close() error {
	return c.rpc.Call("Service.Command", "close", nil)
}

func (c *Client) ShowImage(image image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return err
	}

	return c.rpc.Call("Service.ShowImage", &ShowImageRequest{
		Image: buf.Bytes(),
	}, nil)
}

func (c *Client) UpdateRegion(posX uint16, posY uint16, image image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return err
	}

	return c.rpc.Call("Service.UpdateRegion", &UpdateRegionRequest{
		PosX:  posX,
		PosY:  posY,
		Image: buf.Bytes(),
	}, nil)
}
