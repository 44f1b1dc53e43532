package massage

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/comments"
	"github.com/jsfmt/jsfmt/internal/jsparser"
)

func TestEqualIgnoresPositionsAndComments(t *testing.T) {
	a, commentsA, err := jsparser.Parse("let x = 1; // trailing\n")
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	if len(commentsA) == 0 {
		t.Fatalf("expected at least one comment in a")
	}
	comments.Attach(a, commentsA)

	b, _, err := jsparser.Parse("let   x=1;")
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}
	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false, want true\ndiff:\n%s", Diff(a, b))
	}
}

func TestEqualDetectsSemanticDrift(t *testing.T) {
	a, _, err := jsparser.Parse("let x = 1;")
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, _, err := jsparser.Parse("let x = 2;")
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}
	if Equal(a, b) {
		t.Errorf("Equal(a, b) = true, want false (values differ)")
	}
	if Diff(a, b) == "" {
		t.Errorf("Diff(a, b) = empty, want a non-empty diff")
	}
}

func TestStripZeroesPositionsAndComments(t *testing.T) {
	n, raw, err := jsparser.Parse("let x = 1; // c\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	comments.Attach(n, raw)
	s := Strip(n)
	if s.Start != 0 || s.End != 0 {
		t.Errorf("Strip did not zero Program span: %d..%d", s.Start, s.End)
	}
	decl := s.Body[0]
	if decl.Start != 0 || decl.End != 0 {
		t.Errorf("Strip did not zero statement span: %d..%d", decl.Start, decl.End)
	}
	if decl.TrailingComments != nil || decl.LeadingComments != nil {
		t.Errorf("Strip left comments attached: %+v / %+v", decl.LeadingComments, decl.TrailingComments)
	}
}
