// ABOUTME: Reads track metadata from audio file tags with graceful fallbacks
// ABOUTME: Missing or unreadable tags degrade to filename title, sentinel artist, zero duration

// Package metadata extracts display metadata from audio files.
// Extraction never fails: every path yields a usable Track, with fields
// falling back individually when tags are missing or the file is unreadable.
package metadata

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/rs/zerolog/log"

	"ring-player/playlist"
	"ring-player/pool"
)

// UnknownArtist is the artist shown for tracks without a readable artist tag
const UnknownArtist = "Unknown Artist"

// Extract reads tags from the file at path and builds a Track.
// Title falls back to the filename without extension, artist to
// UnknownArtist, and duration to 0 when the corresponding tag is absent.
func Extract(path string) playlist.Track {
	track := fallbackTrack(path)

	f, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("metadata open failed, using fallbacks")

		return track
	}

	defer func() { _ = f.Close() }()

	m, err := tag.ReadFrom(f)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("no readable tags, using fallbacks")

		return track
	}

	if title := strings.TrimSpace(m.Title()); title != "" {
		track.Title = title
	}

	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		track.Artist = artist
	}

	if d := rawDuration(m.Raw()); d > 0 {
		track.Duration = d
	}

	return track
}

// ExtractAll reads tags for a batch of paths in parallel, preserving input
// order in the result
func ExtractAll(paths []string) []playlist.Track {
	tracks := make([]playlist.Track, len(paths))

	if len(paths) == 0 {
		return tracks
	}

	wp := pool.NewWorkerPool(0, len(paths))
	defer wp.Close()

	for i, path := range paths {
		i, path := i, path
		wp.Submit(func() {
			tracks[i] = Extract(path)
		})
	}

	wp.Wait()

	return tracks
}

// fallbackTrack builds the track used when no tags can be read
func fallbackTrack(path string) playlist.Track {
	base := filepath.Base(path)

	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" {
		title = base
	}

	return playlist.Track{
		Title:    title,
		Artist:   UnknownArtist,
		Duration: 0,
		Path:     path,
	}
}

// rawDuration digs a track length out of format-specific tag frames.
// No standard accessor exists for duration, so check the common frame names
// and convert whatever type the container hands back.
func rawDuration(raw map[string]interface{}) int {
	if raw == nil {
		return 0
	}

	for _, key := range []string{"TLEN", "LENGTH", "length"} {
		val, exists := raw[key]
		if !exists {
			continue
		}

		var n float64

		switch v := val.(type) {
		case string:
			n, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
		case int:
			n = float64(v)
		case float64:
			n = v
		}

		if n <= 0 {
			continue
		}

		// TLEN is the ID3 length frame and carries milliseconds
		if key == "TLEN" {
			n /= 1000
		}

		return int(n)
	}

	return 0
}
