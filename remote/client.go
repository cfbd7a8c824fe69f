package remote

import (
	"fmt"
	"strings"

	"InteractiveMandelbrot/mandelbrot"
	"InteractiveMandelbrot/misc"
	"InteractiveMandelbrot/session"
	"github.com/BrugadaSyndrome/multirpc"
)

// Client drives a remote session. It satisfies session.Controller so a viewer cannot tell it apart
// from a local session.
type Client struct {
	client multirpc.TcpClient
}

func NewClient(serverAddress string) *Client {
	return &Client{
		client: multirpc.NewTcpClient(serverAddress, "SessionClient"),
	}
}

func (c *Client) Connect() error {
	return c.client.Connect()
}

func (c *Client) Disconnect() error {
	return c.client.Disconnect()
}

func (c *Client) OnZoom(cursorX float64, cursorY float64, scrollDeltaSign int) error {
	var viewport mandelbrot.Viewport
	request := ZoomRequest{CursorX: cursorX, CursorY: cursorY, ScrollDeltaSign: scrollDeltaSign}
	return c.call("Session.Zoom", request, &viewport)
}

func (c *Client) OnPan(movementX float64, movementY float64) error {
	var viewport mandelbrot.Viewport
	request := PanRequest{MovementX: movementX, MovementY: movementY}
	return c.call("Session.Pan", request, &viewport)
}

func (c *Client) OnPinchZoom(midX float64, midY float64, distanceRatio float64) error {
	var viewport mandelbrot.Viewport
	request := PinchRequest{DistanceRatio: distanceRatio, MidX: midX, MidY: midY}
	return c.call("Session.PinchZoom", request, &viewport)
}

func (c *Client) Reset() error {
	var viewport mandelbrot.Viewport
	return c.call("Session.Reset", misc.Nothing{}, &viewport)
}

func (c *Client) Viewport() (mandelbrot.Viewport, error) {
	var viewport mandelbrot.Viewport
	err := c.call("Session.Viewport", misc.Nothing{}, &viewport)
	return viewport, err
}

func (c *Client) Frame() (session.Frame, error) {
	var frame session.Frame
	err := c.call("Session.Frame", misc.Nothing{}, &frame)
	return frame, err
}

func (c *Client) RollCall() error {
	var present bool
	return c.call("Session.RollCall", misc.Nothing{}, &present)
}

func (c *Client) call(method string, request interface{}, reply interface{}) error {
	if err := c.client.Call(method, request, reply); err != nil {
		return restoreSentinel(method, err)
	}
	return nil
}

// restoreSentinel maps an error string coming back over the wire to the sentinel it was built from,
// so callers can keep using errors.Is.
func restoreSentinel(method string, err error) error {
	for _, sentinel := range []error{mandelbrot.ErrInvalidViewport, mandelbrot.ErrOutOfBoundsPixel, mandelbrot.ErrDegenerateGesture} {
		if strings.Contains(err.Error(), sentinel.Error()) {
			return fmt.Errorf("%s: %w (%s)", method, sentinel, err)
		}
	}
	return fmt.Errorf("%s: %w", method, err)
}
