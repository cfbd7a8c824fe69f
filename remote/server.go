package remote

import (
	"InteractiveMandelbrot/mandelbrot"
	"InteractiveMandelbrot/misc"
	"InteractiveMandelbrot/session"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

type ZoomRequest struct {
	CursorX         float64
	CursorY         float64
	ScrollDeltaSign int
}

type PanRequest struct {
	MovementX float64
	MovementY float64
}

type PinchRequest struct {
	DistanceRatio float64
	MidX          float64
	MidY          float64
}

// Session is the object served over RPC. Its exported methods are the remote gesture contract and
// all of them funnel into the same session.Session, so remote gestures are serialized with local ones.
type Session struct {
	logger  bslogger.Logger
	session *session.Session
}

func (s *Session) Zoom(request ZoomRequest, viewport *mandelbrot.Viewport) error {
	if err := s.session.OnZoom(request.CursorX, request.CursorY, request.ScrollDeltaSign); err != nil {
		return err
	}
	*viewport = s.session.Viewport()
	return nil
}

func (s *Session) Pan(request PanRequest, viewport *mandelbrot.Viewport) error {
	if err := s.session.OnPan(request.MovementX, request.MovementY); err != nil {
		return err
	}
	*viewport = s.session.Viewport()
	return nil
}

func (s *Session) PinchZoom(request PinchRequest, viewport *mandelbrot.Viewport) error {
	if err := s.session.OnPinchZoom(request.MidX, request.MidY, request.DistanceRatio); err != nil {
		return err
	}
	*viewport = s.session.Viewport()
	return nil
}

func (s *Session) Reset(nothing misc.Nothing, viewport *mandelbrot.Viewport) error {
	if err := s.session.Reset(); err != nil {
		return err
	}
	*viewport = s.session.Viewport()
	return nil
}

func (s *Session) Viewport(nothing misc.Nothing, viewport *mandelbrot.Viewport) error {
	*viewport = s.session.Viewport()
	return nil
}

func (s *Session) Frame(nothing misc.Nothing, frame *session.Frame) error {
	current, err := s.session.Frame()
	if err != nil {
		return err
	}
	*frame = current
	s.logger.Debugf("Sent frame %d (%dx%d)", current.Renders, current.Width, current.Height)
	return nil
}

func (s *Session) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

// Server exposes a session.Session to remote controllers over RPC on TCP.
type Server struct {
	address string
	logger  bslogger.Logger
	server  multirpc.TcpServer
}

func NewServer(s *session.Session, address string) Server {
	service := &Session{
		logger:  bslogger.NewLogger("RemoteSession", bslogger.Normal, nil),
		session: s,
	}
	return Server{
		address: address,
		logger:  bslogger.NewLogger("SessionServer", bslogger.Normal, nil),
		server:  multirpc.NewTcpServer(service, address, "SessionServer"),
	}
}

func (s *Server) Run() error {
	if err := s.server.Run(); err != nil {
		return err
	}
	s.logger.Infof("Serving session at %s", s.address)
	return nil
}

func (s *Server) Stop() error {
	return s.server.Stop()
}

// Wait blocks until Stop is called.
func (s *Server) Wait() {
	s.server.Wait()
}
