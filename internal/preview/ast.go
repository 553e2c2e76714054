package preview

type node interface {
	node()
}

// textNode is literal output.
type textNode struct {
	text string
}

// refNode is a variable reference in output position.
type refNode struct {
	name  string
	quiet bool
	// raw is the source text, printed when a plain reference is nil.
	raw  string
	line int
}

// setNode binds a variable to a value read from the request data.
type setNode struct {
	name string
	path []string
	line int
}

// ifNode renders body when cond is truthy.
type ifNode struct {
	cond condition
	body []node
	line int
}

// condition is either a variable or a request path.
type condition struct {
	variable string
	path     []string
}

func (textNode) node() {}
func (refNode) node()  {}
func (setNode) node()  {}
func (ifNode) node()   {}
