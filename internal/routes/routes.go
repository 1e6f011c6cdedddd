package routes

import (
	"net/http"

	"github.com/healthplate/healthplate/internal/app"
	"github.com/healthplate/healthplate/internal/handler"
	"github.com/healthplate/healthplate/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	favourite := handler.NewFavouriteHandler(app.FavouriteService)
	content := handler.NewContentHandler(app.ContentService, app.MenuService)
	contact := handler.NewContactHandler(app.ContactService)
	admin := handler.NewAdminHandler(app.ContentService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Auth flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /api/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/verify-email", rateLimiter(auth.VerifyEmail))
	mux.HandleFunc("POST /api/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/logout", auth.Logout)

	// Profile
	mux.HandleFunc("POST /api/profile/update", profile.Update)
	mux.HandleFunc("POST /api/profile/avatar", profile.UploadAvatar)

	// Favourites
	mux.HandleFunc("GET /api/favourites", favourite.List)
	mux.HandleFunc("POST /api/favourites/toggle", favourite.Toggle)

	// Content
	mux.HandleFunc("GET /api/stories", content.ListStories)
	mux.HandleFunc("GET /api/stories/{slug}", content.ShowStory)
	mux.HandleFunc("GET /api/recipes", content.ListRecipes)
	mux.HandleFunc("GET /api/recipes/{slug}", content.ShowRecipe)
	mux.HandleFunc("GET /api/menu", content.Menu)

	// Contact
	mux.HandleFunc("POST /api/contact", contact.Submit)

	// ============================================================================
	// PROTECTED ROUTES (/admin/api/*)
	// ============================================================================

	mux.HandleFunc("GET /admin/api/stories", middleware.RequireAuth(admin.ListStories))
	mux.HandleFunc("POST /admin/api/stories", middleware.RequireAuth(admin.CreateStory))
	mux.HandleFunc("GET /admin/api/stories/{id}", middleware.RequireAuth(admin.ShowStory))
	mux.HandleFunc("PUT /admin/api/stories/{id}", middleware.RequireAuth(admin.UpdateStory))
	mux.HandleFunc("DELETE /admin/api/stories/{id}", middleware.RequireAuth(admin.DeleteStory))
	mux.HandleFunc("GET /admin/api/recipes", middleware.RequireAuth(admin.ListRecipes))
	mux.HandleFunc("POST /admin/api/recipes", middleware.RequireAuth(admin.CreateRecipe))
	mux.HandleFunc("GET /admin/api/recipes/{id}", middleware.RequireAuth(admin.ShowRecipe))
	mux.HandleFunc("PUT /admin/api/recipes/{id}", middleware.RequireAuth(admin.UpdateRecipe))
	mux.HandleFunc("DELETE /admin/api/recipes/{id}", middleware.RequireAuth(admin.DeleteRecipe))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
