package preview

import "errors"

var (
	// ErrUnsupportedConstruct reports a construct outside the renderable subset.
	ErrUnsupportedConstruct = errors.New("unsupported template construct")
	// ErrRender reports a template that is malformed or failed to execute.
	ErrRender = errors.New("template rendering failed")
)
