// Package ui contains the Bubble Tea program that renders the dock.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own layout, pointer handling,
// keyboard input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function: mouse events feed the
//     dock state machine, frame ticks advance the animation channels, and
//     catalog events swap the item set.
//   - A frame message is scheduled with tea.Tick at the configured frame
//     rate. Each frame computes the real elapsed time, ticks the dock's
//     three animation channels, steps the drag-feedback spring, and
//     recomputes the layout used for mouse hit testing.
//
// State ownership:
//   - The ordered items, hover/drag/target indices, and the animation
//     channels live in internal/dock.Dock, which resolves them into one
//     composite scale per item. The Model holds only presentation state:
//     viewport size, pointer position, the jump prompt, and notices.
//   - Item catalogs are loaded and watched by internal/catalog; reloads
//     arrive as messages and replace the dock contents wholesale.
//
// The renderer owns no animation state of its own: View reads a frame
// snapshot from the dock and paints it, so a render after any mutation
// always observes the post-mutation state.
package ui
