package ast

// CommentKind distinguishes line (//) from block (/* */) comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Placement records how comment attachment decided to bind a Comment.
type Placement int

const (
	Unattached Placement = iota
	Leading
	Trailing
	Dangling
)

// Comment is a free-floating piece of source text the parser lifted off
// the token stream. Attachment (internal/comments) assigns it to a Node
// and sets Placement; emission (also internal/comments) marks Printed so
// the "every comment emitted exactly once" invariant can be checked.
type Comment struct {
	Text      string
	Kind      CommentKind
	Start     int
	End       int
	Placement Placement
	Printed   bool

	// OwnLine is true when the comment occupies its own source line
	// (nothing else before it on that line). Attachment uses this to
	// decide whether the comment leads the following node or trails the
	// preceding one; leading-comment emission always follows the
	// comment with a hard line.
	OwnLine bool

	// BlankLineBefore marks a blank source line between this comment and
	// the previous token/comment. internal/jsparser does not set it, so
	// the comments it returns always carry false.
	BlankLineBefore bool
}

// IsPrettierIgnore reports whether the comment text is the sentinel that
// suppresses formatting of the following node (spec.md §4.4).
func (c *Comment) IsPrettierIgnore() bool {
	return c != nil && trimComment(c.Text) == "prettier-ignore"
}

func trimComment(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
