package handlers

import (
	"HeritagePartage/internal/config"
	"HeritagePartage/internal/middleware"
	"HeritagePartage/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the routers to the services.
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	commentService *service.CommentService,
	preferenceService *service.PreferenceService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithIdentity)

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	itemHandler := NewItemHandler(itemService, logger, cfg)
	commentHandler := NewCommentHandler(commentService, logger)
	preferenceHandler := NewPreferenceHandler(preferenceService, logger)

	r.Route("/api", func(r chi.Router) {
		// Users
		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}", userHandler.Get)

		// Items, photos and what hangs off them
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.Post("/", itemHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", itemHandler.Get)
				r.Patch("/", itemHandler.Update)
				r.Delete("/", itemHandler.Delete)
				// the web client historically used both verbs here
				r.Patch("/restore", itemHandler.Restore)
				r.Put("/restore", itemHandler.Restore)

				r.Post("/photos", itemHandler.AddPhoto)
				r.Patch("/photos/reorder", itemHandler.ReorderPhotos)
				r.Delete("/photos/{photoID}", itemHandler.DeletePhoto)

				r.Get("/comments", commentHandler.List)
				r.Post("/comments", commentHandler.Create)
				r.Delete("/comments/{commentID}", commentHandler.Delete)

				r.Get("/preferences", preferenceHandler.ListForItem)
				r.Post("/preferences", preferenceHandler.Set)
				r.Get("/preferences/me", preferenceHandler.GetMine)
			})
		})

		// Repartition statistics
		r.Get("/stats/repartition", preferenceHandler.Repartition)
	})

	return &Handler{Router: r}
}
