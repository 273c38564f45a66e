// Package view puts a [pinboard.Board] on screen with Ebitengine.
//
// The board's root element must be a [pinboard.Box] tree, which is what
// [pinboard.LoadLayout] and [pinboard.NewBox] produce. Each frame the Game
// feeds mouse input into a [pinboard.Session] and paints every box at its
// root-relative bounds, with the carried item drawn last.
//
// # Controls
//
//   - Left click an item to pick it up, left click again to place it.
//   - Right click an item to pick up a copy; right click while carrying
//     stamps a copy where the cursor is.
//   - Press both buttons on an item to remove it.
//   - Escape cancels the carry and glides the item home.
//   - F12 writes a screenshot to RunConfig.ScreenshotDir.
//
// # Synthetic input
//
// InjectPress, InjectMove, InjectRelease, InjectClick and InjectCarry queue
// pointer events that are consumed one per frame ahead of the real mouse,
// which makes the view drivable from scripts and tests. A [pinboard.Runner]
// set with SetRunner is stepped once per frame in the same way.
package view
