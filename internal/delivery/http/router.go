package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"rallypoint/internal/delivery/http/controllers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/domain"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	HourLog      *controllers.HourLogController
	Message      *controllers.MessageController
	Admin        *controllers.AdminController
	AI           *controllers.AIController
}

// NewRouter initializes the HTTP router with all application routes.
// uploadDir, when non-empty, is served under /uploads/ for profile pictures.
func NewRouter(c Controllers, verifier domain.TokenVerifier, uploadDir string) *http.ServeMux {
	mux := http.NewServeMux()

	private := middleware.RequireAuth(verifier)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return private(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/forgotpassword", c.Auth.ForgotPassword)
	mux.HandleFunc("PUT /auth/resetpassword/{token}", c.Auth.ResetPassword)

	// Users
	mux.HandleFunc("POST /users/register", c.Auth.SignUp)
	mux.HandleFunc("GET /users/profile", private(c.User.GetProfile))
	mux.HandleFunc("PUT /users/profile", private(c.User.UpdateProfile))
	mux.HandleFunc("POST /users/profile/picture", private(c.User.UploadPicture))
	mux.HandleFunc("GET /users/my-events", private(c.Registration.MyEvents))
	mux.HandleFunc("GET /users/my-hours", private(c.HourLog.MyHours))
	mux.HandleFunc("GET /users", admin(c.User.ListVolunteers))
	mux.HandleFunc("PUT /users/{userID}/status", admin(c.User.SetUserStatus))

	// Events
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("POST /events", admin(c.Event.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", admin(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", admin(c.Event.DeleteEvent))
	mux.HandleFunc("POST /events/{eventID}/register", private(c.Registration.Register))
	mux.HandleFunc("DELETE /events/{eventID}/unregister", private(c.Registration.Unregister))
	mux.HandleFunc("POST /events/{eventID}/waitlist", private(c.Registration.JoinWaitlist))
	mux.HandleFunc("POST /events/{eventID}/loghours", private(c.HourLog.SubmitHours))

	// Support messages
	mux.HandleFunc("POST /messages", private(c.Message.CreateMessage))
	mux.HandleFunc("GET /messages/my", private(c.Message.MyMessages))
	mux.HandleFunc("GET /messages", admin(c.Message.ListMessages))
	mux.HandleFunc("PUT /messages/{messageID}/read", admin(c.Message.MarkRead))
	mux.HandleFunc("PUT /messages/{messageID}/reply", admin(c.Message.Reply))

	// Admin
	mux.HandleFunc("GET /admin/stats", admin(c.Admin.Stats))
	mux.HandleFunc("GET /admin/pending-hours", admin(c.HourLog.PendingHours))
	mux.HandleFunc("PUT /admin/hours/{logID}/status", admin(c.HourLog.SetHourLogStatus))

	// AI
	mux.HandleFunc("POST /ai/generate", admin(c.AI.GenerateDescription))
	mux.HandleFunc("POST /ai/classify", admin(c.AI.ClassifyEvent))
	mux.HandleFunc("GET /ai/recommendations", private(c.AI.Recommendations))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Uploaded profile pictures
	if uploadDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
