// escposd forwards raw TCP print jobs to an ESC/POS printer attached over
// USB or a serial port. All configuration comes from ESCPOSD_* environment
// variables.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/gousb"
	"github.com/spf13/viper"

	"github.com/nanoprint/escpos/logger"
	"github.com/nanoprint/escpos/printer"
	"github.com/nanoprint/escpos/server"
)

type transport interface {
	printer.Writer
	io.Closer
}

func main() {
	viper.SetEnvPrefix("escposd")
	viper.AutomaticEnv()
	viper.SetDefault("address", "localhost:9100")
	viper.SetDefault("transport", "usb")
	viper.SetDefault("serial_port", "/dev/ttyUSB0")
	viper.SetDefault("baud_rate", 115200)

	log := logger.New(slog.LevelInfo)

	t, err := openTransport(log)
	if err != nil {
		log.Error("open transport failed", "error", err)
		os.Exit(1)
	}
	defer t.Close()

	srv := server.New(t, viper.GetString("address"), log)
	if err := srv.Start(); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openTransport(log *slog.Logger) (transport, error) {
	switch kind := viper.GetString("transport"); kind {
	case "serial":
		port := viper.GetString("serial_port")
		baud := viper.GetInt("baud_rate")
		log.Info("opening serial printer", "port", port, "baud", baud)
		return printer.OpenSerial(port, baud)

	case "usb":
		vid := viper.GetUint16("usb_vid")
		pid := viper.GetUint16("usb_pid")
		if vid != 0 || pid != 0 {
			log.Info("opening usb printer", "vid", vid, "pid", pid)
			return printer.OpenUSB(gousb.ID(vid), gousb.ID(pid))
		}
		log.Info("scanning for usb printer")
		return printer.OpenUSBAuto()

	default:
		return nil, fmt.Errorf("unknown transport %q", kind)
	}
}
