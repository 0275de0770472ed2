package rest

import (
	"github.com/go-chi/chi/v5"
)

// AttachRoutes mounts every handler under /api/society.
func AttachRoutes(router chi.Router, handler *Handler) {
	router.Route("/api/society", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", handler.ListPosts)
			r.Post("/", handler.CreatePost)
			r.Get("/{postId}", handler.GetPost)
			r.Put("/{postId}", handler.UpdatePost)
			r.Delete("/{postId}", handler.DeletePost)
			r.Post("/{postId}/like", handler.LikePost)
			r.Delete("/{postId}/like", handler.UnlikePost)
			r.Get("/{postId}/comments", handler.ListPostComments)
			r.Post("/{postId}/comments", handler.CreateComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Delete("/{commentId}", handler.DeleteComment)
			r.Post("/{commentId}/like", handler.LikeComment)
			r.Delete("/{commentId}/like", handler.UnlikeComment)
		})

		r.Route("/communities", func(r chi.Router) {
			r.Get("/", handler.ListCommunities)
			r.Post("/", handler.CreateCommunity)
			r.Get("/{communityId}", handler.GetCommunity)
			r.Put("/{communityId}", handler.UpdateCommunity)
			r.Delete("/{communityId}", handler.DeleteCommunity)
			r.Post("/{communityId}/follow", handler.FollowCommunity)
			r.Delete("/{communityId}/follow", handler.UnfollowCommunity)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handler.ListReports)
			r.Post("/", handler.CreateReport)
			r.Put("/{reportId}", handler.UpdateReport)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{userId}", handler.GetUserProfile)
			r.Put("/{userId}", handler.UpdateUserProfile)
			r.Delete("/{userId}", handler.DeleteUser)
		})

		r.Route("/chats", func(r chi.Router) {
			r.Get("/", handler.ListUserChats)
			r.Post("/group", handler.CreateGroupChat)
			r.Post("/private", handler.CreatePrivateChat)
			r.Get("/{chatId}/messages", handler.ListChatMessages)
			r.Post("/{chatId}/members", handler.AddChatMember)
			r.Delete("/{chatId}/members", handler.RemoveChatMember)
		})
	})

	router.Get("/ws/chat/{chatId}", handler.ChatWS)
	router.Get("/ws/notifications", handler.NotificationWS)
}
