package routes

import (
	"github.com/gin-gonic/gin"

	"sfg_core/internal/adapter/http/handlers"
)

const (
	PathPriceBook = "/price-book"
	PathCustomers = "/customers"
	PathIntakes   = "/intake"
	PathJobs      = "/jobs"
	PathEstimates = "/estimates"
)

func addCoreRoutes(
	rg *gin.RouterGroup,
	priceBookHandler *handlers.PriceBookHandler,
	customerHandler *handlers.CustomerHandler,
	leadHandler *handlers.LeadHandler,
	jobHandler *handlers.JobHandler,
	estimateHandler *handlers.EstimateHandler,
) {
	priceBook := rg.Group(PathPriceBook)
	{
		priceBook.POST("", priceBookHandler.CreateItem)
		priceBook.GET("", priceBookHandler.ListItems)
		priceBook.GET("/catalog", priceBookHandler.BrowseCatalog)
		priceBook.POST("/import", priceBookHandler.ImportCSV)
		priceBook.GET("/:id", priceBookHandler.GetItem)
		priceBook.PUT("/:id", priceBookHandler.UpdateItem)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	intakes := rg.Group(PathIntakes)
	{
		intakes.POST("", leadHandler.CreateLead)
		intakes.GET("", leadHandler.ListLeads)
		intakes.GET("/:id", leadHandler.GetLead)
		intakes.PUT("/:id", leadHandler.UpdateLead)
		intakes.POST("/:id/convert", leadHandler.ConvertLead)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/board", jobHandler.GetBoard)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PUT("/:id", jobHandler.UpdateJob)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.GetOrCreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("/:id/items/from-pricebook", estimateHandler.AddItemFromPriceBook)
		estimates.PUT("/:id/items/:itemId", estimateHandler.UpdateItem)
		estimates.DELETE("/:id/items/:itemId", estimateHandler.RemoveItem)
	}
}
