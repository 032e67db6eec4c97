package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/xypong/gui"
	"github.com/jetsetilly/xypong/gui/ebiten"
	"github.com/jetsetilly/xypong/logger"
	"github.com/jetsetilly/xypong/play"
)

func main() {
	opts, err := play.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	if opts.SaveConfig {
		err = opts.Prefs.Save(opts.Config)
		if err != nil {
			fmt.Printf("*** %s\n", err)
			os.Exit(10)
		}
		fmt.Printf("preferences written to %s\n", opts.Config)
		return
	}

	logger.SetEcho(os.Stderr, true)

	if !opts.UsesGUI() {
		err = play.Launch(make(chan bool), nil, opts)
		if err != nil {
			fmt.Printf("*** %s\n", err)
			os.Exit(10)
		}
		return
	}

	// buffered channels. this means we don't have to worry about the gui closing
	// before the game and vice versa
	endGui := make(chan bool, 1)
	endPlay := make(chan bool, 1)
	resultPlay := make(chan error, 1)

	g := gui.NewGUI()
	if opts.Prefs.Scope.Audio {
		g = g.WithAudio()
	}

	go func() {
		resultPlay <- play.Launch(endPlay, g, opts)
		endGui <- true
	}()

	// the gui must run in the main goroutine
	errGui := ebiten.Launch(endGui, g, opts.Prefs.Scope.Size)
	endPlay <- true

	var failed bool
	if errGui != nil {
		fmt.Printf("*** %s\n", errGui)
		failed = true
	}
	if err := <-resultPlay; err != nil {
		fmt.Printf("*** %s\n", err)
		failed = true
	}
	if failed {
		os.Exit(10)
	}
}
