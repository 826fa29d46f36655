// Package viewer holds the per-request viewer identity.
package viewer

// Context is the resolved identity of the inbound request. It is created
// once per request and never persisted. An anonymous context carries
// neither an ID nor a credential.
type Context struct {
	id            int64
	token         string
	authenticated bool
}

// Anonymous returns a context for an unauthenticated request.
func Anonymous() Context {
	return Context{}
}

// New returns an authenticated context. The token is the raw bearer
// credential, forwarded unmodified to upstream relationship calls.
func New(id int64, token string) Context {
	return Context{id: id, token: token, authenticated: true}
}

// ID returns the viewer identity. Zero for anonymous contexts.
func (c Context) ID() int64 { return c.id }

// Token returns the raw bearer credential. Empty for anonymous contexts.
func (c Context) Token() string { return c.token }

// IsAnonymous reports whether no credential was presented.
func (c Context) IsAnonymous() bool { return !c.authenticated }
