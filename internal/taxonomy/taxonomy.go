// Package taxonomy maps notification types to their message, icon, color and
// navigation rule. Everything here is a pure function of its input.
package taxonomy

import (
	"net/url"
	"strings"

	"go-talent-session/internal/domain"
)

const (
	placeholderSender = "Someone"
	fallbackMessage   = "You have a new notification"
	senderToken       = "{sender}"
)

type routeFunc func(n domain.Notification) domain.Target

type entry struct {
	template string
	icon     string
	color    string
	route    routeFunc
}

var table = map[domain.NotificationType]entry{
	domain.NotificationReaction: {
		template: "{sender} reacted to your post", icon: "thumbs-up", color: "blue", route: postTarget,
	},
	domain.NotificationComment: {
		template: "{sender} commented on your post", icon: "comment", color: "green", route: postTarget,
	},
	domain.NotificationReply: {
		template: "{sender} replied to your comment", icon: "reply", color: "green", route: postTarget,
	},
	domain.NotificationConnectionRequest: {
		template: "{sender} sent you a connection request", icon: "user-plus", color: "purple", route: profileTarget,
	},
	domain.NotificationConnectionAccepted: {
		template: "{sender} accepted your connection request", icon: "user-check", color: "purple", route: profileTarget,
	},
	domain.NotificationJobOffer: {
		template: "{sender} sent you a job offer", icon: "briefcase", color: "orange", route: jobTarget,
	},
	domain.NotificationJobApplication: {
		template: "{sender} applied to your job", icon: "file-user", color: "orange", route: applicantsTarget,
	},
	domain.NotificationCompanyPost: {
		template: "{sender} published a new post", icon: "building", color: "gray", route: postTarget,
	},
	domain.NotificationNewPost: {
		template: "{sender} published a new post", icon: "building", color: "gray", route: postTarget,
	},
	domain.NotificationMessage: {
		template: "{sender} sent you a message", icon: "message", color: "teal", route: conversationTarget,
	},
}

var fallback = entry{template: fallbackMessage, icon: "bell", color: "gray", route: noTarget}

// Known reports whether t has a dedicated rendering.
func Known(t domain.NotificationType) bool {
	_, ok := table[t]
	return ok
}

// Describe renders n. Unknown types get the generic entry and no target.
func Describe(n domain.Notification) domain.Rendering {
	e, ok := table[n.Type]
	if !ok {
		e = fallback
	}
	return domain.Rendering{
		Message: strings.ReplaceAll(e.template, senderToken, SenderName(n.Sender)),
		Icon:    e.icon,
		Color:   e.color,
		Target:  e.route(n),
	}
}

// TargetFor returns only the navigation part of Describe.
func TargetFor(n domain.Notification) domain.Target {
	e, ok := table[n.Type]
	if !ok {
		return noTarget(n)
	}
	return e.route(n)
}

// SenderName resolves the display name of a sender reference. Unresolved or
// unreadable references fall back to a neutral placeholder.
func SenderName(sender domain.Ref) string {
	switch sender.Type {
	case domain.RefCompany:
		var c domain.CompanySummary
		if sender.Object(&c) && strings.TrimSpace(c.Name) != "" {
			return strings.TrimSpace(c.Name)
		}
	default:
		var u domain.UserSummary
		if sender.Object(&u) {
			if name := u.DisplayName(); name != "" {
				return name
			}
		}
	}
	return placeholderSender
}

func noTarget(domain.Notification) domain.Target {
	return domain.Target{Kind: domain.TargetNone}
}

// postTarget deep-links into the feed. The post must be populated: a bare
// post id is not enough to anchor the feed.
func postTarget(n domain.Notification) domain.Target {
	if n.Entity == nil {
		return noTarget(n)
	}
	id, ok := n.Entity.ResolvedID()
	if !ok || id == "" {
		return noTarget(n)
	}
	return domain.Target{
		Kind: domain.TargetFeedPost,
		ID:   id,
		Path: "/feed?post=" + url.QueryEscape(id),
	}
}

func profileTarget(n domain.Notification) domain.Target {
	id := n.Sender.AnyID()
	if id == "" {
		return noTarget(n)
	}
	prefix := "/profile/"
	if n.Sender.Type == domain.RefCompany {
		prefix = "/company/"
	}
	return domain.Target{Kind: domain.TargetProfile, ID: id, Path: prefix + url.PathEscape(id)}
}

// jobTarget and applicantsTarget accept either id form.
func jobTarget(n domain.Notification) domain.Target {
	id := entityID(n)
	if id == "" {
		return noTarget(n)
	}
	return domain.Target{Kind: domain.TargetJob, ID: id, Path: "/jobs/" + url.PathEscape(id)}
}

func applicantsTarget(n domain.Notification) domain.Target {
	id := entityID(n)
	if id == "" {
		return noTarget(n)
	}
	return domain.Target{Kind: domain.TargetApplicants, ID: id, Path: "/jobs/" + url.PathEscape(id) + "/applicants"}
}

func conversationTarget(n domain.Notification) domain.Target {
	id := n.Sender.AnyID()
	if id == "" {
		return noTarget(n)
	}
	return domain.Target{Kind: domain.TargetConversation, ID: id, Path: "/messages/" + url.PathEscape(id)}
}

func entityID(n domain.Notification) string {
	if n.Entity == nil {
		return ""
	}
	return n.Entity.AnyID()
}
