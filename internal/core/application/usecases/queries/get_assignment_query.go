package queries

import (
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery retrieves a single delivery assignment with its full
// order, vendor and customer context. Unlike the listing, delivered
// assignments are visible here.
type GetAssignmentQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentQuery creates a query to retrieve one assignment by ID.
func NewGetAssignmentQuery(assignmentID kernel.UUID) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, err
	}

	return GetAssignmentQuery{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to retrieve.
func (q GetAssignmentQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}
