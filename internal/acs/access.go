package acs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionFollow   Action = "follow"
	ActionUnfollow Action = "unfollow"
	ActionLike     Action = "like"
	ActionUnlike   Action = "unlike"
)

type ResourceKind string

const (
	KindUser      ResourceKind = "user"
	KindCommunity ResourceKind = "community"
	KindPost      ResourceKind = "post"
	KindComment   ResourceKind = "comment"
)

// Resource identifies the target of an authorization check together with
// the identity that owns it. For creation checks the entity does not exist
// yet, so both ids are zero.
type Resource struct {
	Kind    ResourceKind
	ID      uuid.UUID
	OwnerID uuid.UUID
}

func UserResource(id uuid.UUID) Resource {
	return Resource{Kind: KindUser, ID: id, OwnerID: id}
}

func CommunityResource(id, ownerID uuid.UUID) Resource {
	return Resource{Kind: KindCommunity, ID: id, OwnerID: ownerID}
}

func PostResource(id, authorID uuid.UUID) Resource {
	return Resource{Kind: KindPost, ID: id, OwnerID: authorID}
}

func CommentResource(id, authorID uuid.UUID) Resource {
	return Resource{Kind: KindComment, ID: id, OwnerID: authorID}
}

// AccessDeniedError is a terminal authorization failure. It is never
// retried; handlers convert it into a forbidden response.
type AccessDeniedError struct {
	Role     model.Role
	Resource Resource
	Action   Action
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied for %s to %s %s for %s", e.Role, e.Resource.Kind, e.Resource.ID, e.Action)
}

// CheckAccess decides whether role may perform action on resource. The
// decision is a pure function of its arguments: no lookups, no side
// effects.
func CheckAccess(role model.Role, resource Resource, action Action, requesterID *uuid.UUID) error {
	if can(role, resource, action, requesterID) {
		return nil
	}
	return &AccessDeniedError{Role: role, Resource: resource, Action: action}
}

// can evaluates the rule set role-major. Moderator delegates to the User
// rules after its own, so the override priority stays explicit.
func can(role model.Role, resource Resource, action Action, requesterID *uuid.UUID) bool {
	switch role {
	case model.RoleAdmin:
		return true

	case model.RoleModerator:
		if action == ActionDelete && (resource.Kind == KindPost || resource.Kind == KindComment) {
			return true
		}
		return can(model.RoleUser, resource, action, requesterID)

	case model.RoleUser:
		switch {
		case action == ActionCreate &&
			(resource.Kind == KindPost || resource.Kind == KindComment || resource.Kind == KindCommunity):
			return requesterID != nil

		case (action == ActionLike || action == ActionUnlike) &&
			(resource.Kind == KindPost || resource.Kind == KindComment):
			return requesterID != nil

		case (action == ActionFollow || action == ActionUnfollow) && resource.Kind == KindCommunity:
			return requesterID != nil && !isOwner(resource, requesterID)

		// Own content is manageable regardless of resource kind.
		case action == ActionUpdate || action == ActionDelete:
			return isOwner(resource, requesterID)

		case action == ActionRead:
			return true
		}
		return false

	case model.RoleGuest:
		return action == ActionRead
	}

	return false
}

func isOwner(resource Resource, requesterID *uuid.UUID) bool {
	return requesterID != nil && *requesterID == resource.OwnerID
}
