package effect

import (
	"context"
	"io"
	"time"
)

// DefaultTypewriterDelay is the pause between two typed characters.
const DefaultTypewriterDelay = 50 * time.Millisecond

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Typewriter writes text one grapheme at a time, pausing delay after each,
// then a line break. It stops with ctx.Err() when ctx is cancelled.
func Typewriter(ctx context.Context, w io.Writer, text string, delay time.Duration, sleep SleepFunc) error {
	if sleep == nil {
		sleep = Sleep
	}
	for _, g := range Graphemes(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, g); err != nil {
			return err
		}
		if delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
