package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/ai"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/auth"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/mcp"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/students"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/subjects"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/teacher"
	"abled.ai/abled-api-gateway/config"
)

type V1Route struct {
	adaptationAPI *ai.AdaptationAPI
	authRoute     *auth.AuthRoute
	studentsRoute *students.StudentsRoute
	subjectsRoute *subjects.SubjectsRoute
	teacherRoute  *teacher.TeacherRoute
	mcpAPI        *mcp.MCPAPI
}

func NewV1Route(
	adaptationAPI *ai.AdaptationAPI,
	authRoute *auth.AuthRoute,
	studentsRoute *students.StudentsRoute,
	subjectsRoute *subjects.SubjectsRoute,
	teacherRoute *teacher.TeacherRoute,
	mcpAPI *mcp.MCPAPI,
) *V1Route {
	return &V1Route{
		adaptationAPI,
		authRoute,
		studentsRoute,
		subjectsRoute,
		teacherRoute,
		mcpAPI,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/api/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.adaptationAPI.RegisterRouter(v1Router)
	v1Route.authRoute.RegisterRouter(v1Router)
	v1Route.studentsRoute.RegisterRouter(v1Router)
	v1Route.subjectsRoute.RegisterRouter(v1Router)
	v1Route.teacherRoute.RegisterRouter(v1Router)
	v1Route.mcpAPI.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /api/v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
