package engine

import (
	"context"
	"errors"
	"sort"

	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
)

// CommentEngine decides whether a proposed comment is admissible and shapes
// the threaded listing. Nesting is capped at one level: a reply's parent must
// be top-level, and a parent may carry at most one reply.
type CommentEngine struct {
	Store store.CommentStore
}

func NewCommentEngine(s store.CommentStore) *CommentEngine {
	return &CommentEngine{Store: s}
}

type SubmitCommentInput struct {
	PostID          uint
	Body            string
	ParentCommentID *uint
}

// CommentNode is a top-level comment with its single permitted reply attached.
type CommentNode struct {
	models.Comment
	Replies []CommentNode `json:"replies"`
}

// SubmitComment validates and creates a comment. Top-level comments need any
// authenticated actor; replies additionally need a valid, reply-free,
// top-level parent on the same post and a staff actor.
func (e *CommentEngine) SubmitComment(ctx context.Context, actor Actor, in SubmitCommentInput) (*models.Comment, error) {
	if !actor.Authenticated {
		return nil, Unauthorized("authentication required")
	}
	if in.Body == "" {
		return nil, InvalidRequest("comment body must not be empty")
	}

	if in.ParentCommentID != nil {
		parent, err := e.Store.GetComment(ctx, *in.ParentCommentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NotFound("parent comment not found")
			}
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, NotFound("parent comment not found")
		}
		if parent.ParentCommentID != nil {
			return nil, InvalidRequest("replies to replies are not allowed")
		}
		hasReply, err := e.Store.HasReply(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		if hasReply {
			return nil, InvalidRequest("a parent comment can only have one reply")
		}
		if !IsAdmin(actor) {
			return nil, Forbidden("you do not have permission to create a reply")
		}
	}

	comment := &models.Comment{
		Body:            in.Body,
		OwnerID:         actor.ID,
		PostID:          in.PostID,
		ParentCommentID: in.ParentCommentID,
	}
	if err := e.Store.CreateComment(ctx, comment); err != nil {
		// Losing the insert race on the unique index is the same rejection as
		// failing the pre-check.
		if errors.Is(err, store.ErrDuplicateReply) {
			return nil, InvalidRequest("a parent comment can only have one reply")
		}
		return nil, err
	}
	return comment, nil
}

// ListTopLevel returns top-level comments newest first, each with its reply
// attached. The adjacency is derived per call from parent ids, never stored.
func (e *CommentEngine) ListTopLevel(ctx context.Context, postID uint) ([]CommentNode, error) {
	comments, err := e.Store.ListTopLevelComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	parentIDs := make([]uint, 0, len(comments))
	for _, comment := range comments {
		parentIDs = append(parentIDs, comment.ID)
	}
	replies, err := e.Store.ListReplies(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	replyByParent := make(map[uint]models.Comment, len(replies))
	for _, reply := range replies {
		replyByParent[*reply.ParentCommentID] = reply
	}

	nodes := make([]CommentNode, 0, len(comments))
	for _, comment := range comments {
		node := CommentNode{Comment: comment, Replies: []CommentNode{}}
		if reply, ok := replyByParent[comment.ID]; ok {
			node.Replies = append(node.Replies, CommentNode{Comment: reply, Replies: []CommentNode{}})
		}
		nodes = append(nodes, node)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].CreatedAt.After(nodes[j].CreatedAt)
	})
	return nodes, nil
}

// GetComment returns a single comment with its reply attached if it has one.
func (e *CommentEngine) GetComment(ctx context.Context, id uint) (*CommentNode, error) {
	comment, err := e.Store.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("comment not found")
		}
		return nil, err
	}
	node := &CommentNode{Comment: *comment, Replies: []CommentNode{}}
	replies, err := e.Store.ListReplies(ctx, []uint{comment.ID})
	if err != nil {
		return nil, err
	}
	for _, reply := range replies {
		node.Replies = append(node.Replies, CommentNode{Comment: reply, Replies: []CommentNode{}})
	}
	return node, nil
}

// UpdateComment edits the body, owner-only. The owner field itself never
// changes on update.
func (e *CommentEngine) UpdateComment(ctx context.Context, actor Actor, id uint, body string) (*models.Comment, error) {
	comment, err := e.Store.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("comment not found")
		}
		return nil, err
	}
	if !CanModify(actor, comment.OwnerID) {
		return nil, Forbidden("only the comment owner can edit it")
	}
	if body == "" {
		return nil, InvalidRequest("comment body must not be empty")
	}
	return e.Store.UpdateCommentBody(ctx, id, body)
}

// DeleteComment removes a comment, owner-only.
func (e *CommentEngine) DeleteComment(ctx context.Context, actor Actor, id uint) error {
	comment, err := e.Store.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("comment not found")
		}
		return err
	}
	if !CanModify(actor, comment.OwnerID) {
		return Forbidden("only the comment owner can delete it")
	}
	return e.Store.DeleteComment(ctx, id)
}
