package handler

import (
	"net/http"

	"github.com/visibly/ai-visibility-api/internal/api/handler/router"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/internal/usecases/authenticating"
	"github.com/visibly/ai-visibility-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Categories(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/categories/:id",
			Method:  http.MethodGet,
			Handler: GetCategory(service),
		},
		{
			Path:    "/categories/:id/brands",
			Method:  http.MethodGet,
			Handler: ListCategoryBrands(service),
		},
		{
			Path:    "/categories/:id/prompts",
			Method:  http.MethodGet,
			Handler: ListCategoryPrompts(service),
		},
		{
			Path:    "/categories/:id/leaderboard",
			Method:  http.MethodGet,
			Handler: GetCategoryLeaderboard(service),
		},
		{
			Path:    "/categories/:id/analytics",
			Method:  http.MethodGet,
			Handler: GetCategoryAnalytics(service),
		},
	}
}

func Brands(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/brands/:id",
			Method:  http.MethodGet,
			Handler: GetBrand(service),
		},
		{
			Path:    "/brands/:id/timeseries",
			Method:  http.MethodGet,
			Handler: GetBrandTimeseries(service),
		},
		{
			Path:    "/brands/:id/platforms",
			Method:  http.MethodGet,
			Handler: GetBrandPlatforms(service),
		},
	}
}

func Responses(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/responses/:id",
			Method:  http.MethodGet,
			Handler: GetResponse(service),
		},
	}
}

func Visibility(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/visibility/scores",
			Method:  http.MethodGet,
			Handler: GetVisibilityScores(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
