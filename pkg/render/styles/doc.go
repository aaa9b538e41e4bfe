// Package styles defines how the edges of a hexagon are drawn.
//
// A [Renderer] turns one positioned hexagon into drawing primitives on a
// [Surface] and supplies the single [Style] declaration shared by everything it
// draws. Two renderers exist, selected by name through [ByName]:
//
//   - [Outline] ("hexes"): one closed polygon per hexagon.
//   - [CrowsFoot] ("crowsfeet"): two short dashes per side, one reaching in
//     from each endpoint, leaving the middle of every side open.
//
// Renderers hold no grid or document state and may be reused across scenes.
package styles
