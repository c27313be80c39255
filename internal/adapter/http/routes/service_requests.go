package routes

import (
	"firex_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests = "/service-requests"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.GetAllRequests)

		// Fixed segments before the parametrized lookup so gin does not
		// swallow them as :id.
		requests.GET("/request/:businessId", requestHandler.GetRequestByBusinessID)
		requests.GET("/my-requests", requestHandler.GetMyRequests)
		requests.GET("/status/:status", requestHandler.GetRequestsByStatus)
		requests.GET("/stats", requestHandler.GetStats)

		requests.GET("/:id", requestHandler.GetRequestByID)
		requests.PUT("/:id/status", requestHandler.UpdateStatus)
		requests.DELETE("/:id", requestHandler.DeleteRequest)
	}
}
