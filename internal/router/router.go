package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campuslink/internal/config"
	"campuslink/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	studyGroupHandler *handler.StudyGroupHandler,
	hobbyHandler *handler.HobbyHandler,
	freelancerHandler *handler.FreelancerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.Refresh)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user/:username", authHandler.GetUser)

	// Profile routes (the frontend calls these without authentication)
	api.GET("/users", profileHandler.ListProfiles)
	api.POST("/users", profileHandler.CreateProfile)
	api.PUT("/users/:id", profileHandler.UpdateProfile)
	api.DELETE("/users/:id", profileHandler.DeleteProfile)

	// Study group routes
	api.GET("/study-groups/:profileId", studyGroupHandler.ListGroups)
	api.POST("/study-groups", studyGroupHandler.CreateGroup)
	api.DELETE("/study-groups/:id", studyGroupHandler.DeleteGroup)

	// Hobby routes
	api.GET("/hobbies/:profileId", hobbyHandler.ListHobbies)
	api.POST("/hobbies", hobbyHandler.CreateHobby)
	api.PUT("/hobbies/:id", hobbyHandler.UpdateHobby)
	api.DELETE("/hobbies/:id", hobbyHandler.DeleteHobby)

	// Marketplace routes
	api.GET("/freelancers", freelancerHandler.ListFreelancers)
	api.POST("/freelancers", freelancerHandler.CreateFreelancer)
	api.GET("/freelancers/:id", freelancerHandler.GetFreelancer)
	api.GET("/freelancers/:id/services", freelancerHandler.ListServices)
	api.POST("/services", freelancerHandler.CreateService)
	api.DELETE("/services/:id", freelancerHandler.DeleteService)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
