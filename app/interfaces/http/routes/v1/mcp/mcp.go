package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/auth"
)

// MCPMethodGuard rejects any MCP method outside the allowed set before
// the payload reaches the protocol handler.
func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		var req struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &req); err != nil {
			c.Abort()
			return
		}

		if !allowedMethods[req.Method] {
			c.Abort()
			return
		}
		c.Next()
	}
}

type MCPAPI struct {
	MCPServer         *mcpserver.MCPServer
	adaptationService *adaptation.AdaptationService
	authService       *auth.AuthService
}

func NewMCPAPI(adaptationService *adaptation.AdaptationService, authService *auth.AuthService) *MCPAPI {
	mcpSrv := mcpserver.NewMCPServer("abled", "1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	return &MCPAPI{
		MCPServer:         mcpSrv,
		adaptationService: adaptationService,
		authService:       authService,
	}
}

// MCPStream
// @Summary MCP streamable endpoint
// @Description Exposes the adaptation operations as Model Context Protocol tools over an HTTP stream.
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce text/event-stream
// @Param request body any true "MCP request payload"
// @Success 200 {string} string "Streamed response (SSE or chunked transfer)"
// @Router /api/v1/mcp [post]
func (mcpAPI *MCPAPI) RegisterRouter(router *gin.RouterGroup) {
	mcpAPI.registerTools()

	mcpHttpHandler := mcpserver.NewStreamableHTTPServer(mcpAPI.MCPServer)
	router.Any(
		"/mcp",
		mcpAPI.authService.AppUserAuthMiddleware(),
		MCPMethodGuard(map[string]bool{
			// Initialization / handshake
			"initialize":                true,
			"notifications/initialized": true,
			"ping":                      true,

			// Tools
			"tools/list": true,
			"tools/call": true,
		}),
		gin.WrapH(mcpHttpHandler))
}

func (mcpAPI *MCPAPI) registerTools() {
	adaptNotes := mcp.NewTool("adapt_notes",
		mcp.WithDescription("Adapt lesson text for a student's accessibility profile (vision, hearing, speech, dyslexie)."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Lesson text to adapt")),
		mcp.WithString("studentType", mcp.Required(), mcp.Description("Accessibility profile: vision, hearing, speech or dyslexie")),
	)
	mcpAPI.MCPServer.AddTool(adaptNotes, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		studentType, err := request.RequireString("studentType")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := mcpAPI.adaptationService.GenerateAdaptiveNotes(ctx, text, studentType)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toolResultJSON(result)
	})

	answerQuestion := mcp.NewTool("answer_question",
		mcp.WithDescription("Answer a student's question grounded in the supplied notes, phrased for their accessibility profile."),
		mcp.WithString("notes", mcp.Required(), mcp.Description("Source notes to answer from")),
		mcp.WithString("question", mcp.Required(), mcp.Description("The student's question")),
		mcp.WithString("studentType", mcp.Required(), mcp.Description("Accessibility profile: vision, hearing, speech or dyslexie")),
	)
	mcpAPI.MCPServer.AddTool(answerQuestion, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notes, err := request.RequireString("notes")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		question, err := request.RequireString("question")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		studentType, err := request.RequireString("studentType")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := mcpAPI.adaptationService.GenerateAdaptiveQnA(ctx, notes, studentType, question)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toolResultJSON(result)
	})
}

func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
