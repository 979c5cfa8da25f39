package tenant

// Context identifies the company a request operates on. It is resolved once
// by the HTTP layer (the excluded auth middleware in production, a header in
// this service) and passed explicitly into every core call; nothing below
// the handlers re-derives it.
type Context struct {
	CompanyID uint
}

// Valid reports whether a company was actually resolved.
func (c Context) Valid() bool {
	return c.CompanyID != 0
}
