package serviceimpl

import "taskboard/domain/models"

// listScope bounds a listing to a single owner. A zero OwnerID means the
// caller may see every record.
type listScope struct {
	OwnerID string
}

func (s listScope) Unscoped() bool {
	return s.OwnerID == ""
}

// canAccess decides whether subject may read or mutate task. Ownership is
// only enforced when the record actually carries an owner; legacy records
// without one are open to everybody. Administrators bypass ownership for
// reads and writes alike.
func canAccess(subject models.Subject, task *models.Task) bool {
	if task.OwnerID == "" {
		return true
	}
	if subject.Admin {
		return true
	}
	return task.OwnerID == subject.ID
}

// listScopeFor resolves the listing scope: administrators list everything,
// everyone else (the anonymous sentinel included) only their own records.
func listScopeFor(subject models.Subject) listScope {
	if subject.Admin {
		return listScope{}
	}
	return listScope{OwnerID: subject.ID}
}
