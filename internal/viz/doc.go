// Package viz renders potential energy landscapes in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas with world-coordinate plotting
//   - [Figure]: the three-panel equilibrium figure (potential, force,
//     ball-on-surface interpretation)
//   - [Explorer]: interactive Bubble Tea view of a particle relaxing in
//     the potential
//
// # Key Bindings (Explorer)
//
//	Space - Pause/Resume
//	R     - Reset the particle
//	N     - Nudge the particle off its position
//	Up/Dn - Select parameter
//	←/→   - Adjust selected parameter
//	Q     - Quit
package viz
