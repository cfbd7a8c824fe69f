package session

import (
	"encoding/json"
	"fmt"

	"InteractiveMandelbrot/mandelbrot"
	"InteractiveMandelbrot/misc"
	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	HideHUD            bool
	MandelbrotSettings mandelbrot.Settings
	ServerAddress      string
	WindowScale        int
}

// LoadSettings reads a JSON settings file. An empty file name yields the defaults.
func LoadSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("SessionSettings", bslogger.Normal, nil),
	}

	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return Settings{}, err
		}
		if err := json.Unmarshal(fileBytes, &s); err != nil {
			return Settings{}, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
		}
	}

	if err := s.Verify(); err != nil {
		return Settings{}, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nSession settings\n"
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Window Scale: %d\n", s.WindowScale)
	output += fmt.Sprintf("Hide HUD: %t", s.HideHUD)
	output += s.MandelbrotSettings.String()
	return output
}

func (s *Settings) Verify() error {
	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if s.ServerAddress == "" {
		address, err := misc.GetLocalAddress()
		if err != nil {
			s.logger.Warningf("Falling back to loopback: %s", err)
			address = "127.0.0.1"
		}
		s.ServerAddress = fmt.Sprintf("%s:%s", address, "51000")
	}
	resolved, err := misc.ResolveServerAddress(s.ServerAddress)
	if err != nil {
		return fmt.Errorf("server address %s - %w", s.ServerAddress, err)
	}
	s.ServerAddress = resolved
	if s.WindowScale < 1 {
		s.WindowScale = 1
	}
	return nil
}
