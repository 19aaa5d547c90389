package app

import (
	"net/http"

	"github.com/cinetix/booking-api/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"

	if app.db != nil {
		if err := app.db.Ping(r.Context()); err != nil {
			status = "DOWN"
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(r.Context()).Err(); err != nil {
			status = "DOWN"
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
