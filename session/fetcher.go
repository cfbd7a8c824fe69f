package session

// FrameFetcher keeps the last frame of a controller and pulls a new one only when a gesture was
// accepted since the previous fetch. Any number of accepted gestures between two fetches costs one
// Frame call, which matters when every frame crosses the network.
type FrameFetcher struct {
	controller Controller
	frame      Frame
	stale      bool
}

// NewFrameFetcher fetches the current frame of controller.
func NewFrameFetcher(controller Controller) (*FrameFetcher, error) {
	f := &FrameFetcher{
		controller: controller,
		stale:      true,
	}
	if _, err := f.Fetch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Invalidate marks the held frame as outdated.
func (f *FrameFetcher) Invalidate() {
	f.stale = true
}

// Fetch pulls a new frame if the held one is outdated and reports whether it did. A failed fetch keeps
// the old frame and stays outdated so the next call retries.
func (f *FrameFetcher) Fetch() (bool, error) {
	if !f.stale {
		return false, nil
	}
	frame, err := f.controller.Frame()
	if err != nil {
		return false, err
	}
	f.frame = frame
	f.stale = false
	return true, nil
}

func (f *FrameFetcher) Frame() Frame {
	return f.frame
}
