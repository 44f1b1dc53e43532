package printer

import "github.com/jsfmt/jsfmt/internal/doc"

// fits is the bounded-lookahead width check described in spec.md §4.1
// and §9: it walks the candidate flat rendering of next, then — if next
// runs out without resolving — continues into restStack (the commands
// that will print immediately afterward on the same line), stopping as
// soon as the running width goes negative or a line break is reached.
// It never touches the caller's main stack and is O(printWidth), not
// O(size of the group), because it returns the instant the budget is
// exceeded or a newline is guaranteed.
func fits(next command, restStack []command, width int, hasLineSuffix bool, groupModeMap map[int]mode) bool {
	restIdx := len(restStack)
	cmds := []command{next}

	for width >= 0 {
		if len(cmds) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			cmds = append(cmds, restStack[restIdx])
			continue
		}

		cmd := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch cmd.doc.Kind {
		case doc.KindText:
			width -= stringWidth(cmd.doc.Text)

		case doc.KindConcat:
			for i := len(cmd.doc.Parts) - 1; i >= 0; i-- {
				cmds = append(cmds, command{indent: cmd.indent, mode: cmd.mode, doc: cmd.doc.Parts[i]})
			}

		case doc.KindIndent, doc.KindAlign:
			cmds = append(cmds, command{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.Child})

		case doc.KindGroup:
			m := cmd.mode
			if cmd.doc.ShouldBreak {
				m = modeBreak
			}
			cmds = append(cmds, command{indent: cmd.indent, mode: m, doc: *cmd.doc.Child})
			if cmd.doc.GroupID != 0 {
				groupModeMap[cmd.doc.GroupID] = m
			}

		case doc.KindLine:
			if cmd.mode == modeBreak {
				return true
			}
			width--

		case doc.KindSoftLine:
			if cmd.mode == modeBreak {
				return true
			}

		case doc.KindHardLine, doc.KindLiteralLine:
			return true

		case doc.KindIfBreak:
			groupMode := cmd.mode
			if cmd.doc.IfBreakGroupID != 0 {
				if gm, ok := groupModeMap[cmd.doc.IfBreakGroupID]; ok {
					groupMode = gm
				} else {
					groupMode = modeFlat
				}
			}
			if groupMode == modeBreak {
				cmds = append(cmds, command{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.BreakContents})
			} else {
				cmds = append(cmds, command{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.FlatContents})
			}

		case doc.KindLineSuffix:
			hasLineSuffix = true

		case doc.KindLineSuffixBoundary:
			if hasLineSuffix {
				return false
			}

		case doc.KindCursor:
			// No width.
		}
	}

	return false
}
