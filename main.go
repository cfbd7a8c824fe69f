package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"InteractiveMandelbrot/misc"
	"InteractiveMandelbrot/remote"
	"InteractiveMandelbrot/session"
	"InteractiveMandelbrot/viewer"
	"github.com/BrugadaSyndrome/bslogger"
)

/**
 * Modes
 *
 * isViewer: open a window on a local session, or on a remote one when serverAddress is given
 * isServer: serve a session over RPC so remote viewers can drive it
 * isViewer + isServer: serve the session and view it locally at the same time
 */

var (
	isServer, isViewer          bool
	serverAddress, settingsFile string
)

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)
	parseArguments()

	if !isViewer && !isServer {
		logger.Fatal("Please specify if this instance is a viewer, a server or both")
	}

	settings, err := session.LoadSettings(settingsFile)
	misc.CheckError(err, logger, misc.Fatal)
	if serverAddress != "" {
		settings.ServerAddress, err = misc.ResolveServerAddress(serverAddress)
		misc.CheckError(err, logger, misc.Fatal)
	}

	// A viewer that only knows a server address drives the remote session
	if isViewer && !isServer && serverAddress != "" {
		client := remote.NewClient(settings.ServerAddress)
		misc.CheckError(client.Connect(), logger, misc.Fatal)
		misc.CheckError(client.RollCall(), logger, misc.Fatal)

		title := fmt.Sprintf("Mandelbrot (remote %s)", settings.ServerAddress)
		misc.CheckError(viewer.Run(client, title, settings.WindowScale, !settings.HideHUD), logger, misc.Error)
		misc.CheckError(client.Disconnect(), logger, misc.Warning)
		return
	}

	s, err := session.NewSession(settings.MandelbrotSettings)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Started session %s", s.Viewport().String())

	var server remote.Server
	if isServer {
		server = remote.NewServer(s, settings.ServerAddress)
		misc.CheckError(server.Run(), logger, misc.Fatal)
	}

	if isViewer {
		misc.CheckError(viewer.Run(s, "Mandelbrot", settings.WindowScale, !settings.HideHUD), logger, misc.Error)
		if isServer {
			misc.CheckError(server.Stop(), logger, misc.Warning)
		}
	}

	if isServer {
		if !isViewer {
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			logger.Info("Serving until interrupted")
			<-interrupt
			misc.CheckError(server.Stop(), logger, misc.Warning)
		}
		server.Wait()
	}
	logger.Info("Shutting down")
}

func parseArguments() {
	flag.BoolVar(&isServer, "isServer", false, "Serve the session to remote viewers")
	flag.BoolVar(&isViewer, "isViewer", false, "Open a window on the session")
	flag.StringVar(&serverAddress, "serverAddress", "", "Address to serve on, or of the server a remote viewer connects to")
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with session settings")

	flag.Parse()
}
