package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pollwise/poll-service/internal/handlers"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.GET("/polls", handler.GetPolls)
		rg.GET("/polls/:id", handler.GetPollByID)
		rg.GET("/polls/:id/results", handler.GetResults)
	}
}

// Vote routes accept anonymous callers; identity is attached when present.
func RegisterVoteRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.POST("/polls/:id/vote", handler.SubmitVote)
	}
}

func RegisterPrivateRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.POST("/polls", handler.CreatePoll)
		rg.PUT("/polls/:id", handler.UpdatePoll)
		rg.DELETE("/polls/:id", handler.DeletePoll)

		rg.GET("/logs", handler.GetLogs)
	}
}
