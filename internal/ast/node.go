// Package ast defines the attributed syntax tree consumed by the core
// pretty-printing pipeline. A Node carries a discriminator (Kind), the
// byte offsets of its source span, and kind-specific child slots grouped
// into one struct with named optional fields: a single node type beats a
// sprawling hierarchy of per-kind structs when the dispatcher already
// switches on Kind everywhere.
package ast

// Kind discriminates the syntactic form of a Node.
type Kind int

const (
	// Program is the root of every tree.
	Program Kind = iota

	// Statements.
	ExpressionStatement
	BlockStatement
	EmptyStatement
	IfStatement
	ForStatement
	ForInStatement
	ForOfStatement
	WhileStatement
	DoWhileStatement
	SwitchStatement
	SwitchCase
	TryStatement
	CatchClause
	ReturnStatement
	ThrowStatement
	BreakStatement
	ContinueStatement
	LabeledStatement
	Directive

	// Declarations.
	FunctionDeclaration
	ClassDeclaration
	ClassBody
	MethodDefinition
	PropertyDefinition
	VariableDeclaration
	VariableDeclarator
	ImportDeclaration
	ImportSpecifier
	ImportDefaultSpecifier
	ImportNamespaceSpecifier
	ExportNamedDeclaration
	ExportDefaultDeclaration
	ExportAllDeclaration
	ExportSpecifier

	// Expressions.
	Identifier
	PrivateIdentifier
	NumericLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	RegExpLiteral
	BinaryExpression
	LogicalExpression
	ConditionalExpression
	AssignmentExpression
	UpdateExpression
	UnaryExpression
	MemberExpression
	CallExpression
	NewExpression
	SequenceExpression
	ArrayExpression
	ObjectExpression
	Property
	TemplateLiteral
	TemplateElement
	TaggedTemplateExpression
	ArrowFunctionExpression
	FunctionExpression
	ClassExpression
	YieldExpression
	AwaitExpression
	SpreadElement
	ParenthesizedExpression
	AsExpression
	SatisfiesExpression
	NonNullExpression
	TypeAssertion

	// Patterns.
	ArrayPattern
	ObjectPattern
	AssignmentPattern
	RestElement

	// Type annotations.
	TypeAnnotation
	UnionTypeAnnotation
	IntersectionTypeAnnotation
	NullableTypeAnnotation
	FunctionTypeAnnotation
	ArrayTypeAnnotation
	TupleTypeAnnotation
	GenericTypeAnnotation
	TypeParameter
	TypeReference
	AnyTypeAnnotation
	VoidTypeAnnotation
	KeywordTypeAnnotation
	LiteralTypeAnnotation

	// JSX.
	JSXElement
	JSXFragment
	JSXOpeningElement
	JSXClosingElement
	JSXAttribute
	JSXSpreadAttribute
	JSXExpressionContainer
	JSXText
	JSXIdentifier
	JSXMemberExpression
)

// Node is the single attributed-tree type for the whole grammar. Kind
// selects which of the fields below are meaningful; unused fields are
// left at their zero value.
type Node struct {
	Kind  Kind
	Start int
	End   int

	LeadingComments  []*Comment
	TrailingComments []*Comment
	DanglingComments []*Comment

	// Generic child slots, reused across kinds by convention:
	//   Body       - block/program statement list, function body list
	//   Left/Right - binary/logical/assignment operands
	//   Test       - if/conditional/while condition
	//   Consequent - if-branch, conditional consequent
	//   Alternate  - else-branch, conditional alternate
	//   Object     - member expression receiver
	//   PropertyN  - member expression key (Computed selects [ ] vs .)
	//   Callee     - call/new target
	//   Arguments  - call/new argument list
	//   Argument   - unary/update/return/throw/yield/await/spread operand
	//   Init       - for-loop init, variable declarator initializer
	//   Update     - for-loop update expression
	//   Params     - function/arrow parameter list
	//   Declarations - variable declaration's declarator list
	//   Elements   - array expression/pattern elements
	//   Properties - object expression/pattern properties
	//   Key/Value  - object property key/value
	//   Elements, Quasis, Expressions - template literal parts
	Body         []*Node
	Left         *Node
	Right        *Node
	Test         *Node
	Consequent   *Node
	Alternate    *Node
	Object       *Node
	PropertyN    *Node
	Callee       *Node
	Arguments    []*Node
	Argument     *Node
	Init         *Node
	Update       *Node
	Params       []*Node
	Declarations []*Node
	Elements     []*Node
	Properties   []*Node
	Key          *Node
	Value        *Node
	Quasis       []*Node
	Expressions  []*Node
	Id           *Node
	Tag          *Node
	SuperClass   *Node
	Discriminant *Node
	Cases        []*Node
	Handler      *Node
	Finalizer    *Node
	Label        *Node
	Specifiers   []*Node
	Source       *Node
	Imported     *Node
	Local        *Node
	Exported     *Node
	Declaration  *Node
	ReturnType   *Node
	TypeAnn      *Node
	Types        []*Node
	ElementType  *Node
	TypeParams   []*Node
	Name         *Node
	OpeningElem  *Node
	ClosingElem  *Node
	Attributes   []*Node
	Children     []*Node
	Expr         *Node

	// Scalar attributes.
	Name_      string // identifier/literal textual name; field name avoids clashing with Name *Node above.
	Value_     any    // literal value (string/float64/bool/nil)
	Raw        string // literal's exact source text (e.g. numeric/string literal spelling)
	Operator   string
	Kind_      string // "const"/"let"/"var", method kind ("get"/"set"/"method"/"constructor")
	Computed   bool
	Optional   bool
	Static     bool
	Async      bool
	Generator  bool
	Delegate   bool
	Prefix     bool // update expression: ++x vs x++
	SelfClose  bool // JSX self-closing element
	Shorthand  bool // object property shorthand
	Declare    bool
	Readonly   bool
	Printed    bool // set once this node's own output has been emitted

	// BlankLineBefore records whether at least one blank source line
	// separated this statement from the previous one in a statement
	// list. The translator preserves at most one such blank line (a
	// narrow, explicit exception to the "don't preserve whitespace"
	// Non-goal — see SPEC_FULL.md's supplemented-features section).
	BlankLineBefore bool

	// BrokenInSource records, for an ObjectExpression/ArrayExpression,
	// whether the source had a newline right after its opening
	// "{"/"[". The translator forces such a literal to print broken
	// even when it would otherwise fit flat, preserving the author's
	// choice to break early (see SPEC_FULL.md's supplemented-features
	// section).
	BrokenInSource bool
}

// Clone returns a deep copy of the node, used by translator passes that
// need to rewrite a subtree (e.g. the range driver's splice) without
// mutating the original AST.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Body = cloneSlice(n.Body)
	clone.Arguments = cloneSlice(n.Arguments)
	clone.Params = cloneSlice(n.Params)
	clone.Declarations = cloneSlice(n.Declarations)
	clone.Elements = cloneSlice(n.Elements)
	clone.Properties = cloneSlice(n.Properties)
	clone.Quasis = cloneSlice(n.Quasis)
	clone.Expressions = cloneSlice(n.Expressions)
	clone.Cases = cloneSlice(n.Cases)
	clone.Specifiers = cloneSlice(n.Specifiers)
	clone.Types = cloneSlice(n.Types)
	clone.TypeParams = cloneSlice(n.TypeParams)
	clone.Attributes = cloneSlice(n.Attributes)
	clone.Children = cloneSlice(n.Children)
	clone.Left = n.Left.Clone()
	clone.Right = n.Right.Clone()
	clone.Test = n.Test.Clone()
	clone.Consequent = n.Consequent.Clone()
	clone.Alternate = n.Alternate.Clone()
	clone.Object = n.Object.Clone()
	clone.PropertyN = n.PropertyN.Clone()
	clone.Callee = n.Callee.Clone()
	clone.Argument = n.Argument.Clone()
	clone.Init = n.Init.Clone()
	clone.Update = n.Update.Clone()
	clone.Key = n.Key.Clone()
	clone.Value = n.Value.Clone()
	clone.Id = n.Id.Clone()
	clone.Tag = n.Tag.Clone()
	clone.SuperClass = n.SuperClass.Clone()
	clone.Discriminant = n.Discriminant.Clone()
	clone.Handler = n.Handler.Clone()
	clone.Finalizer = n.Finalizer.Clone()
	clone.Label = n.Label.Clone()
	clone.Source = n.Source.Clone()
	clone.Imported = n.Imported.Clone()
	clone.Local = n.Local.Clone()
	clone.Exported = n.Exported.Clone()
	clone.Declaration = n.Declaration.Clone()
	clone.ReturnType = n.ReturnType.Clone()
	clone.TypeAnn = n.TypeAnn.Clone()
	clone.ElementType = n.ElementType.Clone()
	clone.Name = n.Name.Clone()
	clone.OpeningElem = n.OpeningElem.Clone()
	clone.ClosingElem = n.ClosingElem.Clone()
	clone.Expr = n.Expr.Clone()
	return &clone
}

func cloneSlice(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Contains reports whether the byte offset pos falls within [n.Start, n.End].
func (n *Node) Contains(pos int) bool {
	return n != nil && n.Start <= pos && pos <= n.End
}

// Covers reports whether n's span fully contains [start, end].
func (n *Node) Covers(start, end int) bool {
	return n != nil && n.Start <= start && end <= n.End
}
