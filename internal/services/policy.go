package services

// Action names a mutation an actor may attempt on someone's resource.
type Action string

const (
	ActionUpdatePost    Action = "post.update"
	ActionDeletePost    Action = "post.delete"
	ActionUpdateComment Action = "comment.update"
	ActionDeleteComment Action = "comment.delete"
)

// Authorize decides whether an actor may perform an action on a resource
// owned by ownerID. Every write action here is owner-only; reads are not
// routed through the policy.
func Authorize(actorID uint, action Action, ownerID uint) error {
	switch action {
	case ActionUpdatePost, ActionDeletePost, ActionUpdateComment, ActionDeleteComment:
		if actorID != ownerID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
