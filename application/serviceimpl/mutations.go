package serviceimpl

import (
	"strings"
	"time"

	"taskboard/domain/dto"
	"taskboard/domain/repositories"
)

// timestampLayout matches the millisecond ISO 8601 form used everywhere a
// task timestamp is stored or returned.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// buildTaskMutations converts a validated partial update into the ordered
// assignments applied against the store. Absent fields produce no mutation.
// The order is fixed (updatedAt, title, description, status, priority,
// dueDate) so the same payload and clock always yield the same expression.
func buildTaskMutations(req *dto.UpdateTaskRequest, now time.Time) []repositories.Mutation {
	mutations := []repositories.Mutation{
		{Field: "updatedAt", Value: now.UTC().Format(timestampLayout)},
	}
	if req.Title != nil {
		mutations = append(mutations, repositories.Mutation{Field: "title", Value: strings.TrimSpace(*req.Title)})
	}
	if req.Description != nil {
		mutations = append(mutations, repositories.Mutation{Field: "description", Value: strings.TrimSpace(*req.Description)})
	}
	if req.Status != nil {
		mutations = append(mutations, repositories.Mutation{Field: "status", Value: *req.Status})
	}
	if req.Priority != nil {
		mutations = append(mutations, repositories.Mutation{Field: "priority", Value: *req.Priority})
	}
	if req.DueDate != nil {
		mutations = append(mutations, repositories.Mutation{Field: "dueDate", Value: *req.DueDate})
	}
	return mutations
}
