package models

// Subject identifies the caller of an operation. The transport layer fills
// it from the verified token claims, or with the anonymous sentinel when no
// credentials were presented.
type Subject struct {
	ID    string
	Admin bool
}

// AnonymousSubject returns the identity used for unauthenticated callers.
func AnonymousSubject() Subject {
	return Subject{ID: AnonymousOwner}
}
