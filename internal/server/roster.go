// Package server tracks the set of joined usernames via the Roster type.
package server

// Roster is the connection registry: the insertion-ordered set of usernames
// currently joined. It is owned by the hub goroutine and never locked.
//
// Duplicate joins are accepted silently; the name appears once and stays
// until the first disconnect of a connection that joined under it.
type Roster struct {
	names []string
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add inserts a username if it is not already present.
func (r *Roster) Add(name string) {
	if r.Contains(name) {
		return
	}
	r.names = append(r.names, name)
}

// Remove deletes a username, preserving the order of the rest.
func (r *Roster) Remove(name string) {
	for i, existing := range r.names {
		if existing == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return
		}
	}
}

// Contains reports whether a username is joined.
func (r *Roster) Contains(name string) bool {
	for _, existing := range r.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Names returns an insertion-ordered snapshot of the roster. The snapshot is
// never nil so an empty roster serializes as an empty list.
func (r *Roster) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
