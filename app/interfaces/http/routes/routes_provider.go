package routes

import (
	"github.com/google/wire"

	v1 "abled.ai/abled-api-gateway/app/interfaces/http/routes/v1"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/ai"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/auth"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/auth/google"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/mcp"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/students"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/subjects"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/teacher"
)

var RouteProvider = wire.NewSet(
	ai.NewAdaptationAPI,
	google.NewGoogleAuthAPI,
	auth.NewAuthRoute,
	students.NewStudentsRoute,
	subjects.NewSubjectsRoute,
	teacher.NewTeacherRoute,
	mcp.NewMCPAPI,
	v1.NewV1Route,
)
