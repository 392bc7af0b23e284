package domain

// ActivityScope is the repository-level narrowing derived from a caller's
// identity. EmployeeIDs lists the identifier values a record may carry to be
// visible; nil means no narrowing (admin). Empty reports that the caller can
// see nothing at all, in which case the store must not be queried.
type ActivityScope struct {
	EmployeeIDs []string
	Empty       bool
}

// ScopeFor derives the activity scope for an identity. Admins see everything,
// optionally narrowed to a single employee identifier of their choosing.
// Regular users see only records matching their own email or id. An identity
// with neither resolvable fails closed.
func ScopeFor(ident Identity, requestedEmployee string) ActivityScope {
	if ident.IsAdmin() {
		if requestedEmployee != "" {
			return ActivityScope{EmployeeIDs: []string{requestedEmployee}}
		}
		return ActivityScope{}
	}

	ids := make([]string, 0, 2)
	if ident.Email != "" {
		ids = append(ids, ident.Email)
	}
	if ident.ID != "" {
		ids = append(ids, ident.ID)
	}
	if len(ids) == 0 {
		return ActivityScope{Empty: true}
	}
	return ActivityScope{EmployeeIDs: ids}
}

// Allows reports whether a record with the given employee identifier falls
// inside the scope.
func (s ActivityScope) Allows(employeeID string) bool {
	if s.Empty {
		return false
	}
	if s.EmployeeIDs == nil {
		return true
	}
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// VisibleActivities returns the subset of activities the identity may see.
// Pure function of its inputs: no store, no clock, no side effects.
func VisibleActivities(ident Identity, activities []Activity) []Activity {
	return VisibleActivitiesScoped(ident, activities, "")
}

// VisibleActivitiesScoped is VisibleActivities with an optional admin-chosen
// employee filter. The filter is ignored for non-admin callers.
func VisibleActivitiesScoped(ident Identity, activities []Activity, requestedEmployee string) []Activity {
	scope := ScopeFor(ident, requestedEmployee)
	if scope.Empty {
		return []Activity{}
	}
	if scope.EmployeeIDs == nil {
		return activities
	}

	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if scope.Allows(a.EmployeeID) {
			out = append(out, a)
		}
	}
	return out
}
