// ABOUTME: Non-interactive modes for the player
// ABOUTME: Implements the queue listing table and the headless autoplayer

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"

	"ring-player/config"
	"ring-player/player"
	"ring-player/playlist"
)

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// RunList prints the queue as a table and exits
func RunList(queue *playlist.Playlist) error {
	if queue.IsEmpty() {
		return errors.New("queue is empty")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "#\tTitle\tArtist\tTime"); err != nil {
		log.Warn().Err(err).Msg("failed to write header")
	}

	if _, err := fmt.Fprintln(w, "---\t-----\t------\t----"); err != nil {
		log.Warn().Err(err).Msg("failed to write separator")
	}

	total := 0

	for i, track := range queue.Tracks() {
		total += track.Duration

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			truncate(track.Title, 40),
			truncate(track.Artist, 30),
			playlist.FormatDuration(track.Duration),
		); err != nil {
			log.Warn().Err(err).Msgf("failed to write track %d", i+1)
		}
	}

	if err := w.Flush(); err != nil {
		log.Warn().Err(err).Msg("failed to flush output")
	}

	fmt.Printf("\n%d tracks, %s total\n", queue.Len(), playlist.FormatDuration(total))

	return nil
}

// RunHeadless plays the queue from the current track without a UI.
// Ctrl+C stops playback early; with auto advance off it exits after one track.
func RunHeadless(queue *playlist.Playlist, cfg config.Config) error {
	if queue.IsEmpty() {
		return errors.New("queue is empty")
	}

	engine := player.NewEngine(cfg.DefaultVolume)
	defer engine.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		cancel()
	}()

	// Detect if stdout is a TTY - no live status line in non-interactive
	// contexts (cron, pipes, etc.)
	isTerminal := isTTY(os.Stdout)
	startTime := time.Now()
	played := 0

	playCurrent := func() {
		cur := queue.Current()
		engine.Load(cur.Track.Path, cur.Track.Duration)
		engine.Play()
		played++
		fmt.Printf("Now playing: %s\n", cur.Track.String())
	}

	playCurrent()

loop:
	for {
		select {
		case ev, ok := <-engine.Events():
			if !ok {
				break loop
			}

			switch ev.Kind {
			case player.EventPosition:
				if isTerminal {
					// Overwrite the status line in place; non-TTY skips
					// per-second updates entirely to avoid log spam
					fmt.Printf("\r%s     ", FormatClock(ev.Position, engine.Duration()))
				}

			case player.EventCompleted:
				if isTerminal {
					// Clear status line before the next announcement
					fmt.Print("\r\033[K")
				}

				if !cfg.AutoAdvance {
					break loop
				}

				queue.Advance()
				playCurrent()
			}

		case <-ctx.Done():
			engine.Stop()

			break loop
		}
	}

	if isTerminal {
		fmt.Print("\r\033[K")
	}

	fmt.Printf("\nPlayed %d tracks in %v\n", played, time.Since(startTime).Round(time.Second))

	return nil
}
