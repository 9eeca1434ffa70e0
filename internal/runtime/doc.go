// Package runtime defines the installable Runtime capability, the Registry
// that hands out one instance per runtime identifier, and the Session that
// carries install mode and the one-time global staging state.
//
// Variants embed Base, obtained from the Registry through their Constructor,
// and call Base.Install before applying their own directory mappings:
//
//	func (c *Codex) Install(s *runtime.Session) error {
//		if err := c.Base.Install(s); err != nil {
//			return err
//		}
//		return c.Apply(s, c.Mappings()...)
//	}
package runtime
