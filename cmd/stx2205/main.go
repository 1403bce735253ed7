// Command stx2205 runs the ST2205U-based device emulator core against an
// OTP image and a flash image, rendering the LCD and accepting button
// input through a host backend.
//
// Grounded on the cli.App/action wiring in a Game Boy emulator's CLI
// entrypoints, adapted from a single ROM positional argument and a
// headless/terminal mode switch to this device's two fixed input files
// plus --scale and --save-file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/coremaze/stx2205/internal/host"
	"github.com/coremaze/stx2205/internal/host/sdl2"
	"github.com/coremaze/stx2205/internal/host/terminal"
	"github.com/coremaze/stx2205/internal/hosterr"
	"github.com/coremaze/stx2205/internal/machine"
	"github.com/coremaze/stx2205/internal/pacer"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "stx2205"
	app.Usage = "stx2205 [options] <otp_file> <flash_file>"
	app.Description = "ST2205U-based handheld keychain device emulator"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "scale, s",
			Usage: "integer scale factor for the displayed pixels",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "save-file, o",
			Usage: "if set, dump the 2 MiB flash image to this path after shutdown",
		},
		cli.BoolFlag{
			Name:  "terminal",
			Usage: "render in the terminal instead of opening an SDL2 window",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal startup error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowAppHelp(c)
		return errors.New("usage: stx2205 [options] <otp_file> <flash_file>")
	}
	otpPath := c.Args().Get(0)
	flashPath := c.Args().Get(1)

	otp, err := os.ReadFile(otpPath)
	if err != nil {
		return hosterr.NewFileIO(otpPath, err)
	}
	if len(otp) != hosterr.OtpSize {
		return hosterr.NewInvalidOtpSize(len(otp))
	}

	flashData, err := os.ReadFile(flashPath)
	if err != nil {
		return hosterr.NewFileIO(flashPath, err)
	}
	if len(flashData) != hosterr.FlashSize {
		return hosterr.NewInvalidFlashSize(len(flashData))
	}

	m := machine.New(otp, flashData, slog.Default())
	m.Reset()

	var backend host.Backend
	if c.Bool("terminal") {
		backend = terminal.New()
	} else {
		backend = sdl2.New()
	}

	cfg := host.Config{Title: "stx2205", Scale: c.Int("scale")}
	if err := backend.Init(cfg); err != nil {
		return hosterr.NewScreenSetup(err)
	}
	defer backend.Cleanup()

	p := pacer.New(m, backend, backend, backend)

	for !backend.ShouldQuit() {
		p.Run()
	}

	if savePath := c.String("save-file"); savePath != "" {
		if err := os.WriteFile(savePath, m.DumpFlash(), 0o644); err != nil {
			return hosterr.NewFileIO(savePath, err)
		}
		fmt.Fprintf(os.Stderr, "saved flash dump to %s\n", savePath)
	}

	return nil
}
