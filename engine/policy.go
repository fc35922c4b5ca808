package engine

// Actor identifies the requester as resolved by the auth middleware. The zero
// value is the anonymous actor.
type Actor struct {
	ID            uint
	UUID          string
	IsStaff       bool
	Authenticated bool
}

// Anonymous is the actor for requests carrying no credentials.
var Anonymous = Actor{}

// CanModify is the owner-or-read-only predicate: writes on an owned object are
// allowed only to its owner. Reads are never gated here.
func CanModify(actor Actor, ownerID uint) bool {
	return actor.Authenticated && actor.ID == ownerID
}

// IsAdmin is the admin-or-read-only predicate for privileged writes
// (posts, tags, comment replies).
func IsAdmin(actor Actor) bool {
	return actor.Authenticated && actor.IsStaff
}
