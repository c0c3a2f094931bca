// Package painter turns rendered log lines into ANSI true-colour text.
//
// Four strategies are available through ColorFormat:
//
//   - None leaves lines uncoloured but makes Warn and Error bold.
//   - Solid wraps the whole line in the level's anchor colour.
//   - InlineGradient colours every grapheme of the message separately,
//     walking the level's palette with a fresh Cursor per message.
//   - MultiLineGradient colours each line with a single colour and moves
//     one step per line, with an independent Cursor per level.
//
// A Cursor ping-pongs between 0 and steps, so a palette is traversed
// first to last and back again without a visible jump. The cursor table
// is the only mutable state in the engine; Painter guards it with a
// mutex whose critical section covers only the cursor advance.
//
// Escapes are 24-bit SGR sequences (ESC[38;2;R;G;Bm ... ESC[0m), with
// ESC[1m added for Warn and Error in every mode.
package painter
