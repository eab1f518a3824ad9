package routes

import (
	"wander/middleware"
	"wander/ratelim"
	"wander/tripevents"
	"wander/trips"
	"wander/utils"

	"github.com/julienschmidt/httprouter"
)

func AddTripRoutes(router *httprouter.Router) {
	router.GET("/api/trips", middleware.Authenticate(trips.GetTrips))
	router.GET("/api/trips/search", trips.SearchTrips)
	router.GET("/api/trips/all/:id", trips.GetTrip)
	router.GET("/api/trips/all/:id/calendar", trips.GetCalendar)
	router.POST("/api/trips", middleware.Authenticate(trips.CreateTrip))
	router.PUT("/api/trips/all/:id", middleware.Authenticate(trips.UpdateTrip))
	router.DELETE("/api/trips/all/:id", middleware.Authenticate(trips.DeleteTrip))
	router.POST("/api/trips/all/:id/fork", middleware.Authenticate(trips.ForkTrip))
	router.PUT("/api/trips/all/:id/publish", middleware.Authenticate(trips.PublishTrip))
}

func AddTripEventRoutes(router *httprouter.Router) {
	router.POST("/api/trips/all/:id/events", middleware.Authenticate(tripevents.CreateEvents))
	router.PUT("/api/trips/all/:id/events/:eventid", middleware.Authenticate(tripevents.EditEvent))
	router.POST("/api/trips/all/:id/events/:eventid/move", middleware.Authenticate(tripevents.MoveEvent))
	router.DELETE("/api/trips/all/:id/events/:eventid", middleware.Authenticate(tripevents.DeleteEvent))
}

func AddUtilityRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/csrf", rateLimiter.Limit(utils.CSRF))
}
