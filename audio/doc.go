// Package audio plays music and sound effects. Music plays in a single slot
// with fade and crossfade support, sound effects are cached and can be
// positioned relative to a listener.
package audio
