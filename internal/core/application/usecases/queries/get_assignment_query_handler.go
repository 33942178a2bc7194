package queries

import (
	"context"

	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAssignmentQueryHandler retrieves a single assignment read model from
// the database. Returns errs.ErrObjectNotFound when the assignment does
// not exist.
type GetAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentQueryHandler creates a handler for single-assignment queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentQueryHandler(db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{db: db}
}

// Handle executes the query to retrieve one assignment with its order,
// vendor and customer context.
func (h GetAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentQuery,
) (AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		assignmentSelectSQL+" WHERE a.id = ?",
		query.AssignmentID().Bytes(),
	).Rows()
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AssignmentResponse{}, err
		}
		return AssignmentResponse{}, errs.NewObjectNotFoundError("assignment", query.AssignmentID().String())
	}

	assignment, err := scanAssignmentRow(rows.Scan)
	if err != nil {
		return AssignmentResponse{}, err
	}
	rows.Close()

	assignments := []AssignmentResponse{assignment}
	if err = attachAssignmentItems(ctx, h.db, assignments); err != nil {
		return AssignmentResponse{}, err
	}

	return assignments[0], nil
}
