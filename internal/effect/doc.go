// Package effect implements the decorative transforms applied to greeting
// text: party palette, confetti, grapheme rainbow, typewriter animation,
// cowsay bubble and box border.
//
// Transforms are pure functions over strings except Typewriter, which
// writes to an io.Writer with a pause between characters. All randomness is
// drawn from an injected randsrc.Source.
package effect
